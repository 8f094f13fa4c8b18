package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"googlemaps.github.io/maps"

	"github.com/rsudharapan/igd-backend/config"
	"github.com/rsudharapan/igd-backend/internal/jarak"
	"github.com/rsudharapan/igd-backend/internal/routes"
	"github.com/rsudharapan/igd-backend/pkg/storage/mariadb"
	"github.com/rsudharapan/igd-backend/pkg/storage/mongodb"
)

// Taksiran jarak disimpan sehari; rute jalan tidak berubah sesering itu.
const cacheJarakTTL = 24 * time.Hour

func main() {
	cfg := config.LoadConfig()
	db := mariadb.Connect()

	// Estimasi jarak via Google Maps, dengan cache Redis bila tersedia.
	var taksir *jarak.Service
	if cfg.MapsAPIKey != "" {
		client, err := maps.NewClient(maps.WithAPIKey(cfg.MapsAPIKey))
		if err != nil {
			logrus.Fatalf("gagal membuat maps client: %v", err)
		}
		var cache jarak.Cache
		if cfg.RedisAddr != "" {
			rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
			cache = jarak.NewRedisCache(rdb)
		}
		taksir = jarak.NewService(jarak.GoogleLookup(client), cache, cacheJarakTTL)
	} else {
		logrus.Warn("GOOGLE_MAPS_API_KEY kosong, jarak ambulans harus diisi manual")
	}

	// Arsip audit rincian tarif di MongoDB.
	var audit *mongo.Collection
	if cfg.MongoURI != "" {
		client, err := mongodb.Connect(cfg.MongoURI)
		if err != nil {
			logrus.Fatalf("gagal terhubung ke MongoDB: %v", err)
		}
		audit = client.Database(cfg.MongoDB).Collection("rincian_tarif_ambulans")
	} else {
		logrus.Warn("MONGO_URI kosong, rincian tarif tidak diarsipkan")
	}

	e := echo.New()
	e.HideBanner = true
	routes.Init(e, db, taksir, audit)

	logrus.Infof("server berjalan pada port %s", cfg.Port)
	logrus.Fatal(e.Start(":" + cfg.Port))
}
