package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go-wms-admin/internal/handler"
	"go-wms-admin/internal/middleware"
	"go-wms-admin/internal/model"
	"go-wms-admin/internal/repository"
	"go-wms-admin/internal/service"
	"go-wms-admin/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Permission{}, &model.Role{}, &model.User{},
		&model.Organization{}, &model.Branch{}, &model.Warehouse{},
		&model.Product{}, &model.StockSummary{},
	)

	// 3. Seed default permissions, roles, and admin user
	seedPermissionsRolesAndAdmin(db)
	if os.Getenv("SEED_DEMO_DATA") == "true" {
		seedDemoData(db)
	}

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	orgRepo := repository.NewOrganizationRepo(db)
	branchRepo := repository.NewBranchRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	productRepo := repository.NewProductRepo(db)
	stockRepo := repository.NewStockRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	masterDataService := service.NewMasterDataService(orgRepo, branchRepo, warehouseRepo)
	dashService := service.NewDashboardService(warehouseRepo, productRepo, stockRepo)
	permissionService := service.NewPermissionService(permissionRepo)

	authHandler := handler.NewAuthHandler(authService)
	menuHandler := handler.NewMenuHandler(permissionService)
	orgHandler := handler.NewOrganizationHandler(masterDataService)
	branchHandler := handler.NewBranchHandler(masterDataService)
	warehouseHandler := handler.NewWarehouseHandler(masterDataService)
	dashHandler := handler.NewDashboardHandler(dashService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "WMS Admin v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/logout", middleware.RequireAuth(userRepo), authHandler.Logout)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Profile (any authenticated user)
	protected.Get("/profile", authHandler.GetProfile)
	protected.Put("/profile", authHandler.UpdateProfile)

	// Navigation menu, filtered to the caller's permissions
	protected.Get("/menu", menuHandler.GetMenu)

	// Dashboard
	protected.Get("/dashboard/warehouses", middleware.RequirePermission("dashboard.read"), dashHandler.GetWarehouses)
	protected.Get("/dashboard/overview", middleware.RequirePermission("dashboard.read"), dashHandler.GetOverview)

	// Organizations
	protected.Get("/organizations", middleware.RequirePermission("organizations.read"), orgHandler.List)
	protected.Get("/organizations/export", middleware.RequirePermission("organizations.read"), orgHandler.Export)
	protected.Get("/organizations/options", middleware.RequirePermission("branches.read"), orgHandler.Options)
	protected.Put("/organizations/:id", middleware.RequirePermission("organizations.update"), orgHandler.Update)
	protected.Patch("/organizations/:id/status", middleware.RequirePermission("organizations.update"), orgHandler.ToggleStatus)

	// Branches
	protected.Get("/branches", middleware.RequirePermission("branches.read"), branchHandler.List)
	protected.Get("/branches/export", middleware.RequirePermission("branches.read"), branchHandler.Export)
	protected.Put("/branches/:id", middleware.RequirePermission("branches.update"), branchHandler.Update)
	protected.Patch("/branches/:id/status", middleware.RequirePermission("branches.update"), branchHandler.ToggleStatus)

	// Warehouses
	protected.Get("/warehouses", middleware.RequirePermission("warehouses.read"), warehouseHandler.List)
	protected.Get("/warehouses/export", middleware.RequirePermission("warehouses.read"), warehouseHandler.Export)
	protected.Patch("/warehouses/:id/status", middleware.RequirePermission("warehouses.update"), warehouseHandler.ToggleStatus)

	// User Management (settings)
	protected.Get("/users", middleware.RequirePermission("users.read"), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequirePermission("users.read"), userHandler.GetUser)
	protected.Post("/users", middleware.RequirePermission("users.create"), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePermission("users.update"), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePermission("users.delete"), userHandler.DeleteUser)

	// Roles
	protected.Get("/roles", middleware.RequirePermission("roles.read"), roleHandler.GetRoles)

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server stopped")
}

// seedPermissionsRolesAndAdmin creates the default permissions, the ADMIN and
// OPERATOR roles with their grants, and the initial admin user. Idempotent:
// existing rows are left alone.
func seedPermissionsRolesAndAdmin(db *gorm.DB) {
	permissionRepo := repository.NewPermissionRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	if err := permissionRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: failed to seed permissions: %v", err)
		return
	}
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: failed to seed roles: %v", err)
		return
	}

	// ADMIN carries the wildcard; OPERATOR the read-only subset.
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err != nil {
		log.Printf("Warning: admin role not found: %v", err)
		return
	}
	if len(adminRole.Permissions) == 0 {
		wildcard, err := permissionRepo.FindByCode(model.PermissionWildcard)
		if err == nil {
			if err := db.Model(adminRole).Association("Permissions").Append(wildcard); err != nil {
				log.Printf("Warning: failed to grant wildcard to admin role: %v", err)
			}
		}
	}

	operatorRole, err := roleRepo.FindByCode(model.RoleOperator)
	if err == nil && len(operatorRole.Permissions) == 0 {
		var readCodes []string
		for _, p := range model.DefaultPermissions {
			if strings.HasSuffix(p.Code, ".read") {
				readCodes = append(readCodes, p.Code)
			}
		}
		readPermissions, err := permissionRepo.FindByCodes(readCodes)
		if err == nil {
			for i := range readPermissions {
				if err := db.Model(operatorRole).Association("Permissions").Append(&readPermissions[i]); err != nil {
					log.Printf("Warning: failed to grant %s to operator role: %v", readPermissions[i].Code, err)
				}
			}
		}
	}

	// Initial admin user
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	var existing model.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err != gorm.ErrRecordNotFound {
		return
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
		log.Println("Warning: ADMIN_PASSWORD not set, using default. Change it immediately.")
	}

	admin := &model.User{
		Email:    adminEmail,
		FullName: "Administrator",
		RoleID:   &adminRole.ID,
		IsActive: true,
	}
	if err := admin.SetPassword(adminPassword); err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("Warning: failed to create admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %s", adminEmail)
}

// seedDemoData loads a small master-data set for local development. Skipped
// entirely when any organization already exists.
func seedDemoData(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Organization{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	org := model.Organization{Code: "ORG-DEMO", Name: "Demo Logistics", Email: "ops@demo.example", IsActive: true}
	if err := db.Create(&org).Error; err != nil {
		log.Printf("Warning: failed to seed demo organization: %v", err)
		return
	}
	db.Create(&model.Branch{Code: "BR-HQ", Name: "Headquarters", OrganizationID: org.ID, IsActive: true})

	warehouses := []model.Warehouse{
		{Code: "WH-CENTRAL", Name: "Central Warehouse", IsActive: true},
		{Code: "WH-NORTH", Name: "North Warehouse", IsActive: true},
	}
	for i := range warehouses {
		db.Create(&warehouses[i])
	}

	products := []model.Product{
		{Code: "P-0001", Name: "Pallet Wrap", SKU: "WRAP-STD", Unit: "roll", MinStockLevel: decimal.NewFromInt(20), IsActive: true},
		{Code: "P-0002", Name: "Shipping Label", SKU: "LBL-A6", Unit: "box", MinStockLevel: decimal.NewFromInt(50), IsActive: true},
	}
	for i := range products {
		db.Create(&products[i])
	}

	db.Create(&model.StockSummary{
		ProductID:         products[0].ID,
		WarehouseID:       warehouses[0].ID,
		QuantityOnHand:    decimal.NewFromInt(35),
		QuantityAvailable: decimal.NewFromInt(30),
		QuantityReserved:  decimal.NewFromInt(5),
	})
	log.Println("Seeded demo master data")
}
