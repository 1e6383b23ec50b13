package migrations

import (
	"github.com/mirola777/songboard/internal/domain"
	"gorm.io/gorm"
)

func init() {
	Register(Migration{
		ID: "001_create_song_requests",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&domain.SongRequest{})
		},
	})
}
