package config

import "os"

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	AdminUserID        string
	JournalChannelID   string
	BirthdayChannelID  string
	DatabasePath       string
	Port               string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		AdminUserID:        getEnv("ADMIN_USER_ID", ""),
		JournalChannelID:   getEnv("JOURNAL_CHANNEL_ID", ""),
		BirthdayChannelID:  getEnv("BIRTHDAY_CHANNEL_ID", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./journalclub.db"),
		Port:               getEnv("PORT", "3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
