package service

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ProbeDuration reads the duration of a media file in whole seconds
// (rounded down). Used to auto-fill the music duration field when an
// audio file is uploaded without an explicit value
func ProbeDuration(p string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	zap.L().Debug("Running FFprobe to determine media duration")

	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", "-i", p)

	var stdOut, stdErr bytes.Buffer
	cmd.Stdout = &stdOut
	cmd.Stderr = &stdErr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed, %w (%s)", err, stdErr.String())
	}

	durStr := strings.TrimSpace(stdOut.String())
	d, err := strconv.ParseFloat(durStr, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed duration: %w (%s)", err, stdErr.String())
	}

	zap.L().Debug("FFprobe finished")
	return int(d), nil
}
