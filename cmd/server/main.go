package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Reimot5/cuadrante-servicios/config"
	"github.com/Reimot5/cuadrante-servicios/internal/api/handler"
	"github.com/Reimot5/cuadrante-servicios/internal/api/router"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
	"github.com/Reimot5/cuadrante-servicios/internal/service"
	"github.com/Reimot5/cuadrante-servicios/pkg/database"
	"github.com/Reimot5/cuadrante-servicios/pkg/jwt"
	applogger "github.com/Reimot5/cuadrante-servicios/pkg/logger"
	"github.com/Reimot5/cuadrante-servicios/pkg/redis"
)

func main() {
	// 1. Cargar configuración
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al cargar la configuración: %v\n", err)
		os.Exit(1)
	}

	// 2. Inicializar logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al inicializar el logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("arrancando la aplicación...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Conectar a la base de datos
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("error de conexión a la base de datos", zap.Error(err))
	}
	logger.Info("conexión a la base de datos establecida")

	// 3.1 Ejecutar migraciones
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("error al obtener el sql.DB subyacente", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("error al migrar la base de datos", zap.Error(err))
	}

	// 4. Conectar a Redis
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Fatal("error de conexión a Redis", zap.Error(err))
	}

	// 5. Inicializar el gestor de JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Inyección de dependencias: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 6.1 Sembrar las reglas de descanso por defecto si no hay ninguna
	if err := svc.Reglas.InicializarDefault(context.Background()); err != nil {
		logger.Fatal("error al sembrar las reglas por defecto", zap.Error(err))
	}

	// 7. Inicializar rutas
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. Arrancar el servidor HTTP (con apagado ordenado)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP arrancado", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("fallo del servidor HTTP", zap.Error(err))
		}
	}()

	// 9. Esperar señal del sistema y apagar ordenadamente
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("señal de apagado recibida, cerrando...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error al cerrar el servidor", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	rdb.Close()

	logger.Info("servidor cerrado")
}
