package details

import (
	"gorm.io/gorm"

	"mahasiswa_backend/internals/configs"
	"mahasiswa_backend/internals/features/interests/catalog"
	"mahasiswa_backend/internals/features/interests/recommendation"
	"mahasiswa_backend/internals/helpers/logger"
)

// Deps adalah objek yang dibuat sekali di main lalu dibagi ke semua route.
type Deps struct {
	DB      *gorm.DB
	Config  *configs.Config
	Log     logger.Logger
	Catalog *catalog.FileCatalog
	Engine  *recommendation.Engine
}
