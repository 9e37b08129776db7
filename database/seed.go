package database

import (
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "123456cn"
	}

	admin := model.Account{Username: "Administration", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN}
	if err := db.Where(model.Account{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin account:", err)
		return
	}

	settings := model.AdminSettings{AccountId: admin.ID, RestaurantName: "My Restaurant"}
	if err := db.Where(model.AdminSettings{AccountId: admin.ID}).FirstOrCreate(&settings).Error; err != nil {
		log.Println("failed to seed admin settings:", err)
	}

	// One demo table so the QR flow works out of the box
	var tableCount int64
	db.Model(&model.Table{}).Where("account_id = ?", admin.ID).Count(&tableCount)
	if tableCount == 0 {
		table := model.Table{AccountId: admin.ID, Name: "Table 1", Token: uuid.NewString()}
		if err := db.Create(&table).Error; err != nil {
			log.Println("failed to seed table:", err)
		}
	}

	categories := []model.Category{
		{AccountId: admin.ID, Name: "Starters", SortOrder: 1},
		{AccountId: admin.ID, Name: "Mains", SortOrder: 2},
		{AccountId: admin.ID, Name: "Drinks", SortOrder: 3},
	}
	for _, category := range categories {
		if err := db.Where(model.Category{AccountId: admin.ID, Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed category:", category.Name, "error:", err)
		}
	}
}
