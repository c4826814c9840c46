package logger

import (
	"fmt"
	"time"
)

// ANSI colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

func stamp() string {
	return time.Now().Format("15:04:05")
}

func emit(color, level, tag, msg string) {
	fmt.Printf("%s%s%s %s%-4s%s %s[%s]%s %s\n",
		colorGray, stamp(), colorReset,
		color, level, colorReset,
		colorCyan, tag, colorReset, msg)
}

// Info logs a neutral message under a tag.
func Info(tag, msg string) {
	emit(colorGray, "INFO", tag, msg)
}

// Success logs a completed step.
func Success(tag, msg string) {
	emit(colorGreen, "OK", tag, msg)
}

// Warn logs a recoverable problem.
func Warn(tag, msg string) {
	emit(colorYellow, "WARN", tag, msg)
}

// Error logs a failure.
func Error(tag, msg string) {
	emit(colorRed, "ERR", tag, msg)
}

// Banner prints the startup header with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Printf("%s%sportfolio-optimization%s %s%s%s\n",
		colorBold, colorCyan, colorReset, colorGray, version, colorReset)
}

// Section prints a visual divider before a group of related log lines.
func Section(title string) {
	fmt.Printf("\n%s%s--- %s ---%s\n", colorBold, colorGray, title, colorReset)
}

// Stats prints an aligned key/value pair, used for run summaries.
func Stats(key string, value interface{}) {
	fmt.Printf("  %s%-22s%s %v\n", colorGray, key, colorReset, value)
}
