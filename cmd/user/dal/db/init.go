package db

import (
	"KizombaTok.com/cmd/model"
	"KizombaTok.com/pkg/database"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Load() {
	DB = database.DB
	if err := DB.AutoMigrate(&model.User{}); err != nil {
		panic(err)
	}
}
