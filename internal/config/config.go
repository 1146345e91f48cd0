package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
)

const (
	ControllerPokemon        = "pokemon"
	ControllerVirtualMachine = "virtualmachine"
)

var (
	ErrInvalidValue      = errors.New("invalid value")
	ErrValueOutOfRange   = errors.New("value out of range")
	ErrUnknownController = errors.New("unknown controller")
)

type Config struct {
	KubeConfig           string
	KubeMaster           string
	LogLevel             string
	LogFormat            string
	HTTPPort             string
	MetricsPort          string
	Namespace            string
	Controllers          []string
	Workers              int
	RequeueInterval      time.Duration
	ErrorRequeueInterval time.Duration
	ReconcileTimeout     time.Duration
	PingerInterval       time.Duration
	ShutdownTimeout      time.Duration
	ResyncSchedule       string
	ResyncTZ             string
	TerminationFile      string
}

func Load() (*Config, error) {
	cfg := &Config{
		KubeConfig:      getEnvWithFallback(envKeyKubeConfig, envKeyKubeConfigFallback),
		KubeMaster:      getEnvWithFallback(envKeyKubeMaster, envKeyKubeMasterFallback),
		LogLevel:        getEnvOrDefault(envKeyLogLevel, "info"),
		LogFormat:       getEnvOrDefault(envKeyLogFormat, "json"),
		HTTPPort:        getEnvOrDefault(envKeyHTTPPort, "8080"),
		MetricsPort:     getEnvOrDefault(envKeyMetricsPort, "9090"),
		Namespace:       os.Getenv(envKeyNamespace),
		ResyncSchedule:  strings.TrimSpace(os.Getenv(envKeyResyncSchedule)),
		ResyncTZ:        os.Getenv(envKeyResyncTZ),
		TerminationFile: getEnvOrDefault(envKeyTerminationFile, "/mnt/signal/terminating"),
	}

	controllers, err := parseControllers(
		getEnvOrDefault(envKeyControllers, ControllerPokemon+","+ControllerVirtualMachine),
	)
	if err != nil {
		return nil, err
	}

	cfg.Controllers = controllers

	cfg.Workers, err = parseIntEnv(envKeyWorkers, controller.DefaultWorkers, envMinWorkers, envMaxWorkers)
	if err != nil {
		return nil, err
	}

	durations := []struct {
		target       *time.Duration
		key          string
		defaultValue time.Duration
		minValue     time.Duration
	}{
		{&cfg.RequeueInterval, envKeyRequeueInterval, controller.DefaultRequeueInterval, envMinRequeueInterval},
		{&cfg.ErrorRequeueInterval, envKeyErrorRequeueInterval, controller.DefaultErrorRequeueInterval, envMinErrorRequeueInterval},
		{&cfg.ReconcileTimeout, envKeyReconcileTimeout, controller.DefaultReconcileTimeout, envMinReconcileTimeout},
		{&cfg.PingerInterval, envKeyPingerInterval, 10 * time.Second, envMinPingerInterval},
		{&cfg.ShutdownTimeout, envKeyShutdownTimeout, 10 * time.Second, envMinShutdownTimeout},
	}

	for _, d := range durations {
		*d.target, err = parseDurationEnv(d.key, d.defaultValue, d.minValue)
		if err != nil {
			return nil, err
		}
	}

	if cfg.ResyncTZ != "" {
		if _, err := time.LoadLocation(cfg.ResyncTZ); err != nil {
			return nil, fmt.Errorf("parse %s: %w: %w", envKeyResyncTZ, ErrInvalidValue, err)
		}
	}

	return cfg, nil
}

// Enabled reports whether the named controller should run.
func (c *Config) Enabled(name string) bool {
	return slices.Contains(c.Controllers, name)
}

func parseControllers(value string) ([]string, error) {
	known := []string{ControllerPokemon, ControllerVirtualMachine}
	controllers := make([]string, 0, len(known))

	for _, name := range strings.Split(value, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || slices.Contains(controllers, name) {
			continue
		}

		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("parse %s: %w: %q", envKeyControllers, ErrUnknownController, name)
		}

		controllers = append(controllers, name)
	}

	if len(controllers) == 0 {
		return nil, fmt.Errorf("parse %s: %w: no controllers enabled", envKeyControllers, ErrInvalidValue)
	}

	return controllers, nil
}

func parseDurationEnv(key string, defaultValue, minValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w: %w", key, ErrInvalidValue, err)
	}

	if d < minValue {
		return 0, fmt.Errorf("parse %s: %w: %s is below minimum %s", key, ErrValueOutOfRange, d, minValue)
	}

	return d, nil
}

func parseIntEnv(key string, defaultValue, minValue, maxValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w: %w", key, ErrInvalidValue, err)
	}

	if n < minValue || n > maxValue {
		return 0, fmt.Errorf("parse %s: %w: %d not in [%d, %d]", key, ErrValueOutOfRange, n, minValue, maxValue)
	}

	return n, nil
}

func getEnvWithFallback(key, fallbackKey string) string {
	value := os.Getenv(key)
	if value == "" {
		return os.Getenv(fallbackKey)
	}

	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
