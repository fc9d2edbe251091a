package postgres

import (
	"fmt"
	"sync"

	"github.com/abdulbasset-benz/misskitty-api/internal/domain"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var lock = &sync.Mutex{}
var db *gorm.DB

func GetDBInstance(user, password, host, port, dbName string) (*gorm.DB, error) {
	var err error

	if db == nil {
		lock.Lock()
		defer lock.Unlock()

		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbName)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return db, err
		}

		if err = db.AutoMigrate(&domain.Product{}, &domain.ProductImage{}, &domain.Admin{}); err != nil {
			return db, err
		}
	} else {
		log.Info().Str("component", "GetDBInstance").Msg("instance is already created")
	}

	return db, nil
}
