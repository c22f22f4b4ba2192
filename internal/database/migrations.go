package database

import (
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations() error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para añadir los campos de iconos a la tabla de monedas
	addCoinIconColumnsSQL := `
	ALTER TABLE coins ADD COLUMN icon_png TEXT;
	ALTER TABLE coins ADD COLUMN icon_background_color TEXT;
	`

	_, err := DB.Exec(addCoinIconColumnsSQL)
	if err != nil {
		// No retornamos error porque SQLite puede dar error si la columna ya existe
		// y queremos que la migración continúe
		log.Printf("Columnas de iconos ya existentes: %v", err)
	} else {
		log.Println("Columnas de iconos añadidas correctamente")
	}

	// Migración para añadir el campo status a la tabla de importadores
	addImporterStatusColumnSQL := `
	ALTER TABLE importers ADD COLUMN status TEXT DEFAULT 'pending';
	`

	_, err = DB.Exec(addImporterStatusColumnSQL)
	if err != nil {
		log.Printf("Columna status ya existente: %v", err)
	} else {
		log.Println("Columna status añadida correctamente")
	}

	return nil
}
