package discord

import "time"

const (
	defaultBaseURL     = "https://discord.com/api/webhooks"
	webhookURLTemplate = "%s/%s/%s"

	ColorInfo    = 3447003
	ColorWarning = 16776960
	ColorError   = 15158332

	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 500 * time.Millisecond
)

const (
	DefaultUsername = "Security Toolbox"
	UserAgent       = "Security-Toolbox-Bot/1.0"
	ReportBugTitle  = "Security Toolbox Error Report"
)
