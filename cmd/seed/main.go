// Comando de siembra de datos de desarrollo: crea el usuario admin, una
// plantilla de ejemplo y las reglas de descanso por defecto. Pensado para
// entornos locales; no borra nada si ya hay datos.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/config"
	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
	"github.com/Reimot5/cuadrante-servicios/internal/service"
	"github.com/Reimot5/cuadrante-servicios/pkg/database"
	applogger "github.com/Reimot5/cuadrante-servicios/pkg/logger"
)

var nombresGrupoA = []string{
	"Ana Martínez",
	"Carlos Rodríguez",
	"Laura González",
	"Miguel Fernández",
	"Patricia López",
	"Roberto Sánchez",
	"Elena Torres",
	"Francisco Ramírez",
}

var nombresGrupoB = []string{
	"Diego Castro",
	"Lucía Morales",
	"Javier Ortiz",
	"Carmen Ruiz",
	"Andrés Jiménez",
	"María Herrera",
	"Pedro Navarro",
	"Isabel Domínguez",
	"Luis Vega",
	"Sofía Romero",
	"Jorge Mendoza",
	"Beatriz Silva",
	"Manuel Reyes",
	"Victoria Flores",
	"Alberto Cruz",
	"Claudia Vargas",
	"Raúl Peña",
	"Natalia Guerrero",
	"Sergio Medina",
	"Gabriela Campos",
	"Fernando Cortés",
	"Adriana Ramos",
}

// Índices del grupo B con carné de conducir
var conductoresGrupoB = map[int]bool{3: true, 7: true, 11: true}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al cargar la configuración: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al inicializar el logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("error de conexión a la base de datos", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("error al obtener el sql.DB subyacente", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("error al migrar la base de datos", zap.Error(err))
	}

	ctx := context.Background()
	repo := repository.NewRepository(db)

	// 1. Usuario admin
	if _, err := repo.Usuario.GetByUsername(ctx, "admin"); errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			logger.Fatal("error al generar hash de contraseña", zap.Error(err))
		}
		if err := repo.Usuario.Create(ctx, &model.Usuario{
			Username: "admin",
			Password: string(hash),
			Rol:      model.RolAdmin,
		}); err != nil {
			logger.Fatal("error al crear usuario admin", zap.Error(err))
		}
		logger.Info("usuario admin creado", zap.String("username", "admin"))
	} else {
		logger.Info("usuario admin ya existe, no se toca")
	}

	// 2. Plantilla de ejemplo
	personas, err := repo.Persona.List(ctx, nil, nil)
	if err != nil {
		logger.Fatal("error al consultar la plantilla", zap.Error(err))
	}
	if len(personas) == 0 {
		// Grupo A: especialistas de conducción, todas con carné
		for _, nombre := range nombresGrupoA {
			if err := repo.Persona.Create(ctx, &model.Persona{
				Nombre: nombre, Grupo: model.GrupoA, IsConductor: true,
			}); err != nil {
				logger.Fatal("error al crear persona", zap.String("nombre", nombre), zap.Error(err))
			}
		}
		for i, nombre := range nombresGrupoB {
			if err := repo.Persona.Create(ctx, &model.Persona{
				Nombre: nombre, Grupo: model.GrupoB, IsConductor: conductoresGrupoB[i],
			}); err != nil {
				logger.Fatal("error al crear persona", zap.String("nombre", nombre), zap.Error(err))
			}
		}
		logger.Info("plantilla de ejemplo creada",
			zap.Int("grupo_a", len(nombresGrupoA)),
			zap.Int("grupo_b", len(nombresGrupoB)),
		)
	} else {
		logger.Info("la plantilla ya tiene personas, no se siembra", zap.Int("total", len(personas)))
	}

	// 3. Reglas de descanso por defecto
	reglas := service.NewReglasService(repo, logger)
	if err := reglas.InicializarDefault(ctx); err != nil {
		logger.Fatal("error al sembrar las reglas por defecto", zap.Error(err))
	}

	logger.Info("siembra completada")
}
