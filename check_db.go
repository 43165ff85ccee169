package main

import (
	"backend/internal/app/ds"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := "host=localhost user=postgres password=password dbname=marketplace_db port=5432 sslmode=disable TimeZone=Europe/Moscow"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var spaces []ds.StorageSpace
	err = db.Find(&spaces).Error
	if err != nil {
		log.Fatal("Failed to get storage spaces:", err)
	}

	fmt.Println("Storage spaces in database:")
	for _, space := range spaces {
		imageURL := "NULL"
		if space.ImageURL != nil {
			imageURL = *space.ImageURL
		}
		fmt.Printf("ID: %d, Name: %s, AvailableArea: %d, ImageURL: %s\n", space.ID, space.Name, space.AvailableArea, imageURL)
	}
}
