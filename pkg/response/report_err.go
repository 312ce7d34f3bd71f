package response

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"security-toolbox/pkg/discord"

	"github.com/gin-gonic/gin"
)

// redactedHeaders are never copied into bug reports.
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				// The request logger is gone by now.
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				cut := runeBoundary(line, DiscordMaxMessageLen)
				chunks = append(chunks, line[:cut])
				line = line[cut:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

// runeBoundary returns the largest index <= n that starts a UTF-8 sequence.
func runeBoundary(s string, n int) int {
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		return n
	}
	return cut
}

// buildInternalServerErrorDataForReportBug renders the request and error for a
// bug report. The request body is not included: token payloads are caller data.
func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("============= SECURITY TOOLBOX ERROR =============\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.Path))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
	if rid := c.GetString(ContextKeyRequestID); rid != "" {
		sb.WriteString(fmt.Sprintf("Request : %s\n", rid))
	}
	sb.WriteString("--------------------------------------------------\n")

	if len(c.Request.Header) > 0 {
		sb.WriteString("Headers :\n")
		for key, values := range c.Request.Header {
			if redactedHeaders[key] {
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s: %s\n", key, strings.Join(values, ", ")))
		}
		sb.WriteString("--------------------------------------------------\n")
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))

	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}
	sb.WriteString("==================================================\n")
	return sb.String()
}
