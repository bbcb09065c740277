package main

import (
	"context"
	"flag"
	"log/syslog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/buzkaaclicker/useravatar"
	"github.com/buzkaaclicker/useravatar/jwtauth"
	"github.com/buzkaaclicker/useravatar/persistent"
	"github.com/buzkaaclicker/useravatar/s3store"
	"github.com/buzkaaclicker/useravatar/supabase"
	"github.com/buzkaaclicker/useravatar/transport/rest"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	logrusys "github.com/sirupsen/logrus/hooks/syslog"
	"github.com/uptrace/bun"
)

const defaultBodyLimitMb = 6

func listenAndServe(backend useravatar.Backend, addr string, bodyLimit int) func() error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics, err := rest.NewMetrics(registry)
	if err != nil {
		logrus.WithError(err).Fatalln("Could not register metrics.")
	}

	avatarController := rest.AvatarController{Backend: backend, Metrics: metrics}

	server := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		BodyLimit:    bodyLimit,
		ErrorHandler: rest.ErrorHandler,
	})
	server.Use(rest.LogHandler())

	metrics.InstallTo(server)
	avatarController.InstallTo(server)

	server.Use(rest.NotFoundHandler)

	go func() {
		if err := server.Listen(addr); err != nil {
			logrus.WithError(err).Fatalln("Listen failed.")
		}
	}()

	return server.Shutdown
}

func setupLogger(verbose bool, syslogTag string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.Stamp,
		FullTimestamp:   true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if syslogTag == "" {
		return
	}

	syslogHook, err := logrusys.NewSyslogHook("", "", syslog.LOG_USER, syslogTag)
	if err != nil {
		logrus.WithError(err).Fatalln("Could not create syslog hook.")
		return
	}
	logrus.AddHook(syslogHook)
}

func requireEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		logrus.Fatalln(key + " not set!")
	}
	return value
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		logrus.WithField("value", value).Fatalln(key + " must be a positive integer!")
	}
	return n
}

func s3ConfigFromEnv() s3store.Config {
	return s3store.Config{
		Endpoint:      requireEnv("S3_ENDPOINT"),
		AccessKey:     requireEnv("S3_ACCESS_KEY"),
		SecretKey:     requireEnv("S3_SECRET_KEY"),
		UseSSL:        os.Getenv("S3_USE_SSL") == "true",
		Region:        os.Getenv("S3_REGION"),
		PublicBaseUrl: os.Getenv("S3_PUBLIC_URL"),
	}
}

// composeBackend keeps supabase for every service that has no local override
// configured.
func composeBackend(base useravatar.Backend, users *jwtauth.Verifier,
	objects useravatar.ObjectStore, profiles useravatar.ProfileStore) useravatar.Backend {
	if users == nil && objects == nil && profiles == nil {
		return base
	}
	return useravatar.BackendFunc(func(authorization string) useravatar.Client {
		client := base.Connect(authorization)
		if users != nil {
			client.Users = users.Caller(authorization)
		}
		if objects != nil {
			client.Objects = objects
		}
		if profiles != nil {
			client.Profiles = profiles
		}
		return client
	})
}

func awaitInterruption() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
}

func main() {
	flag.Parse()
	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("file", file).Fatalln("Could not load env file.")
		}
	}

	debug := os.Getenv("DEBUG") == "true"
	setupLogger(debug, os.Getenv("SYSLOG_TAG"))
	logrus.Infoln("Starting avatar backend.")

	base := supabase.Backend{Config: supabase.Config{
		Url:     requireEnv("SUPABASE_URL"),
		AnonKey: requireEnv("SUPABASE_ANON_KEY"),
	}}

	var users *jwtauth.Verifier
	if secret := os.Getenv("SUPABASE_JWT_SECRET"); secret != "" {
		logrus.Infoln("Verifying access tokens locally.")
		users = &jwtauth.Verifier{Secret: secret}
	}

	var objects useravatar.ObjectStore
	if os.Getenv("S3_ENDPOINT") != "" {
		store, err := s3store.New(s3ConfigFromEnv())
		if err != nil {
			logrus.WithError(err).Fatalln("Could not create s3 client.")
		}
		logrus.WithField("endpoint", os.Getenv("S3_ENDPOINT")).Infoln("Storing avatars in s3.")
		objects = store
	}

	var profiles useravatar.ProfileStore
	var pg *bun.DB
	if pgDsn := os.Getenv("POSTGRES_DSN"); pgDsn != "" {
		logrus.Infoln("Opening database.")
		pg = persistent.PgOpen(context.Background(), pgDsn)
		if err := persistent.CreateSchema(context.Background(), pg); err != nil {
			logrus.WithError(err).Fatalln("Could not create schema.")
		}
		profiles = &persistent.ProfileStore{DB: pg}
	}

	backend := composeBackend(base, users, objects, profiles)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	bodyLimit := envInt("BODY_LIMIT_MB", defaultBodyLimitMb) * 1024 * 1024

	logrus.WithField("addr", addr).Infoln("Starting listening... To shut down use ^C")
	shutdown := listenAndServe(backend, addr, bodyLimit)

	awaitInterruption()

	logrus.Infoln("Shutting down...")
	if err := shutdown(); err != nil {
		logrus.WithError(err).Warningln("Fiber shutdown failed.")
	}
	if pg != nil {
		pg.Close()
	}
	logrus.Exit(0)
}
