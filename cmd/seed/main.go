package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodcart/internal/config"
	"foodcart/internal/db"
	"foodcart/internal/model"
	"foodcart/internal/repository"
	"foodcart/internal/service"
)

const (
	adminEmail = "admin@foodcart.example"
	// Default credential for a fresh install. Change it after first login.
	adminPassword = "admin123"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Inquiry{},
		&model.Certificate{},
		&model.Testimonial{},
		&model.SiteSetting{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seedSettings(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}
	if err := seedProducts(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Println("Seed completed")
}

// seedAdmin creates the admin user unless one already exists.
func seedAdmin(ctx context.Context, gormDB *gorm.DB) error {
	userRepo := repository.NewUserRepository(gormDB)

	if _, err := userRepo.FindByEmail(ctx, adminEmail); err == nil {
		log.Println("Admin user already exists, skipping")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := userRepo.Create(ctx, &model.User{
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}); err != nil {
		return err
	}
	log.Printf("Admin user created (email: %s)", adminEmail)
	return nil
}

// seedSettings upserts the default settings. Safe to run repeatedly.
func seedSettings(ctx context.Context, gormDB *gorm.DB) error {
	settingRepo := repository.NewSettingRepository(gormDB)
	for _, setting := range service.DefaultSettings() {
		if err := settingRepo.Upsert(ctx, &setting); err != nil {
			return err
		}
	}
	log.Println("Default settings initialized")
	return nil
}

// seedProducts inserts sample products, but only into an empty catalog.
func seedProducts(ctx context.Context, gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Catalog already has %d products, skipping samples", count)
		return nil
	}

	productRepo := repository.NewProductRepository(gormDB)
	for _, product := range sampleProducts() {
		p := product
		if err := productRepo.Create(ctx, &p); err != nil {
			return err
		}
	}
	log.Println("Sample products created")
	return nil
}

func sampleProducts() []model.Product {
	price := func(v int64) *int64 { return &v }
	return []model.Product{
		// Reseller (used) carts
		{Name: "Momos Cart (2022)", Description: "Well maintained momos cart with steamer", Category: model.CategoryReseller, Price: 35000, OriginalPrice: price(55000), Discount: 36, Condition: model.ConditionExcellent, InStock: true},
		{Name: "Juice Counter", Description: "Fresh juice counter with display", Category: model.CategoryReseller, Price: 28000, OriginalPrice: price(45000), Discount: 38, Condition: model.ConditionGood, InStock: true},
		{Name: "Snacks Stall", Description: "Multi-purpose snacks stall", Category: model.CategoryReseller, Price: 22000, Condition: model.ConditionFair, InStock: true},

		// New carts
		{Name: "Food Cabin Deluxe", Description: "Premium food cabin with all amenities", Category: model.CategoryNew, Price: 185000, OriginalPrice: price(200000), Discount: 8, InStock: true},
		{Name: "Street Food Cart Pro", Description: "Professional grade street food cart", Category: model.CategoryNew, Price: 95000, InStock: true},
		{Name: "Ice Cream Parlor Mobile", Description: "Fully equipped mobile ice cream parlor", Category: model.CategoryNew, Price: 145000, OriginalPrice: price(160000), Discount: 9, InStock: true},

		// Accessories
		{Name: "Alloy Wheels Set", Description: "Premium alloy wheels for food carts", Category: model.CategoryAccessories, Price: 8500, InStock: true},
		{Name: "LED Display Board", Description: "Bright LED menu display board", Category: model.CategoryAccessories, Price: 12000, InStock: true},
		{Name: "Gas Burner Commercial", Description: "Heavy duty commercial gas burner", Category: model.CategoryAccessories, Price: 4500, InStock: true},
	}
}
