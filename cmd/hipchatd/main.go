package main

import (
	"database/sql"
	"encoding/base32"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/csconnell/hipchat-plugin/cmd/hipchatd/config"
	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/csconnell/hipchat-plugin/pkg/notifications"
	"github.com/csconnell/hipchat-plugin/pkg/server"
	"github.com/csconnell/hipchat-plugin/pkg/server/token"
	"github.com/csconnell/hipchat-plugin/pkg/store"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Warnf("could not load .env file, relying on env vars")
	}

	config, err := config.Environ()
	if err != nil {
		logger := logrus.WithError(err)
		logger.Fatalln("main: invalid configuration")
	}

	initLogging(config)

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		fmt.Println(config.String())
	}

	if config.BuildServerURL == "" {
		logrus.Warn("BUILD_SERVER_URL is not set, links in the messages will be relative")
	}

	store := store.New(config.Database.Driver, config.Database.Config, config.Database.EncryptionKey)

	err = setupAdminUser(config, store)
	if err != nil {
		panic(err)
	}

	notificationsManager := notifications.NewManager()
	notificationsManager.CountSent(notificationsSent)
	switch config.Notifications.Provider {
	case "hipchat":
		notificationsManager.AddProvider(hipChatNotificationProvider(config))
	case "slack":
		notificationsManager.AddProvider(slackNotificationProvider(config))
	case "discord":
		notificationsManager.AddProvider(discordNotificationProvider(config))
	default:
		logrus.Fatalf("unknown notifications provider %s", config.Notifications.Provider)
	}

	var statuses notifications.CommitStatusPoster
	if config.IsGithub() {
		statuses = notifications.NewGithubProvider(config.Github.Token, config.Github.BaseURL)
	} else {
		logrus.Info("GITHUB_TOKEN is not set, not posting commit statuses")
	}

	notifier := notifications.NewActiveNotifier(
		notificationsManager,
		store,
		statuses,
		config.BuildServerURL,
	)

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	metricsRouter := chi.NewRouter()
	metricsRouter.Get("/metrics", promhttp.Handler().ServeHTTP)
	go http.ListenAndServe(":8889", metricsRouter)

	r := server.SetupRouter(config, store, notifier, eventsProcessed, perf)
	go func() {
		err = http.ListenAndServe(":8888", r)
		if err != nil {
			panic(err)
		}
	}()
	logrus.Infof("listening on :8888, notifying through %s", config.Notifications.Provider)

	<-stopCh
	store.Close()
	logrus.Info("Successfully cleaned up resources. Stopping.")
}

func hipChatNotificationProvider(config *config.Config) *notifications.HipChatProvider {
	return &notifications.HipChatProvider{
		Server:         config.Notifications.Server,
		Token:          config.Notifications.Token,
		DefaultRoom:    config.Notifications.DefaultChannel,
		ChannelMapping: parseChannelMap(config),
	}
}

func slackNotificationProvider(config *config.Config) *notifications.SlackProvider {
	slackChannelMap := parseChannelMap(config)

	return &notifications.SlackProvider{
		Token:          config.Notifications.Token,
		ChannelMapping: slackChannelMap,
		DefaultChannel: config.Notifications.DefaultChannel,
	}
}

func discordNotificationProvider(config *config.Config) *notifications.DiscordProvider {
	discordChannelMapping := parseChannelMap(config)

	return &notifications.DiscordProvider{
		Token:          config.Notifications.Token,
		ChannelMapping: discordChannelMapping,
		ChannelID:      config.Notifications.DefaultChannel,
	}
}

// parseChannelMap reads the project=room pairs of NOTIFICATIONS_CHANNEL_MAPPING
func parseChannelMap(config *config.Config) map[string]string {
	channelMap := map[string]string{}
	if config.Notifications.ChannelMapping != "" {
		pairs := strings.Split(config.Notifications.ChannelMapping, ",")
		for _, p := range pairs {
			keyValue := strings.SplitN(p, "=", 2)
			if len(keyValue) != 2 {
				logrus.Warnf("invalid channel mapping %s, expected project=room", p)
				continue
			}
			channelMap[strings.TrimSpace(keyValue[0])] = strings.TrimSpace(keyValue[1])
		}
	}
	return channelMap
}

// helper function configures the logging.
func initLogging(c *config.Config) {
	if c.Logging.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if c.Logging.Trace {
		logrus.SetLevel(logrus.TraceLevel)
	}
	if c.Logging.Text {
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   c.Logging.Color,
			DisableColors: !c.Logging.Color,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			PrettyPrint: c.Logging.Pretty,
		})
	}
}

// Creates an admin user and prints their access token, in case there are no users in the database
func setupAdminUser(config *config.Config, store *store.Store) error {
	admin, err := store.User("admin")

	if err == sql.ErrNoRows {
		admin := &model.User{
			Login:  "admin",
			Secret: adminToken(config),
			Admin:  true,
		}
		err = store.CreateUser(admin)
		if err != nil {
			return fmt.Errorf("couldn't create user admin user %s", err)
		}
		return printAdminToken(admin)
	} else if err != nil {
		return fmt.Errorf("couldn't list users to create admin user %s", err)
	}

	if config.PrintAdminToken {
		return printAdminToken(admin)
	}
	logrus.Infof("Admin token was already printed, use the PRINT_ADMIN_TOKEN=true env var to print it again")
	return nil
}

func printAdminToken(admin *model.User) error {
	token := token.New(token.UserToken, admin.Login)
	tokenStr, err := token.Sign(admin.Secret)
	if err != nil {
		return fmt.Errorf("couldn't create admin token %s", err)
	}
	logrus.Infof("Admin token: %s", tokenStr)

	return nil
}

func adminToken(config *config.Config) string {
	if config.AdminToken == "" {
		return base32.StdEncoding.EncodeToString(
			securecookie.GenerateRandomKey(32),
		)
	}
	return config.AdminToken
}
