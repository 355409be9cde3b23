package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blackbear_backend/internals/configs"
	"blackbear_backend/internals/datastore"
	adminService "blackbear_backend/internals/features/admin/service"
	eventModel "blackbear_backend/internals/features/events/model"
	eventService "blackbear_backend/internals/features/events/service"
	galleryModel "blackbear_backend/internals/features/gallery/model"
	galleryService "blackbear_backend/internals/features/gallery/service"
	performerModel "blackbear_backend/internals/features/performers/model"
	performerService "blackbear_backend/internals/features/performers/service"
	routes "blackbear_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	eventsStore := datastore.New[eventModel.EventModel](configs.DataDir, "events.json")
	galleryStore := datastore.New[galleryModel.GalleryItemModel](configs.DataDir, "gallery.json")
	performersStore := datastore.New[performerModel.PerformerEnquiryModel](configs.DataDir, "performers.json")

	app := routes.NewApp(routes.Deps{
		Sessions:   adminService.NewSessionService(configs.AdminPassword),
		Events:     eventService.NewEventService(eventsStore),
		Gallery:    galleryService.NewGalleryService(galleryStore, configs.UploadsDir),
		Performers: performerService.NewPerformerService(performersStore),
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("[INFO] Blackbear server listening on :%s", configs.Port)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
}
