package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env            string
		Build          string
		Debug          bool
		TestMode       bool
		AppName        string
		SecretKey      string
		RollbarToken   string
		PasswordHasher string // sha256 | sha3-256 | blake2b-256

		DataDir string
		Files   FilesConfig
		Server  ServerConfig
	}

	// FilesConfig holds the file name of every table, relative to Config.DataDir.
	FilesConfig struct {
		Student   string
		Grade     string
		Course    string
		Professor string
		Account   string
	}

	ServerConfig struct {
		Address            string
		DisableReqLogs     bool
		JWTExpirationDelta time.Duration
		ShutdownTimeout    time.Duration
	}
)

// Path returns the location of a table file inside DataDir.
func (c *Config) Path(name string) string {
	return filepath.Join(c.DataDir, name)
}

// NewConfig reads the configuration from defaults, `config/.env.<env>` (if it exists)
// and the environment, prefixed by the current ENV (eg. DEV_DATADIR=/var/lib/cmg).
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "CheckMyGrade")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "k2d!x9-checkmygrade-$dev-only-secret+7h")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("passwordHasher", "sha256")
	conf.SetDefault("dataDir", ".")
	conf.SetDefault("files.student", "student.csv")
	conf.SetDefault("files.grade", "grade.csv")
	conf.SetDefault("files.course", "course.csv")
	conf.SetDefault("files.professor", "professor.csv")
	conf.SetDefault("files.account", "authentication.csv")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("server.jwtExpirationDelta", 24*time.Hour)
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:            env,
		Build:          conf.GetString("build"),
		Debug:          conf.GetBool("debug"),
		TestMode:       conf.GetBool("testMode"),
		AppName:        conf.GetString("appName"),
		SecretKey:      conf.GetString("secretKey"),
		RollbarToken:   conf.GetString("rollbarToken"),
		PasswordHasher: conf.GetString("passwordHasher"),
		DataDir:        conf.GetString("dataDir"),
		Files: FilesConfig{
			Student:   conf.GetString("files.student"),
			Grade:     conf.GetString("files.grade"),
			Course:    conf.GetString("files.course"),
			Professor: conf.GetString("files.professor"),
			Account:   conf.GetString("files.account"),
		},
		Server: ServerConfig{
			Address:            conf.GetString("server.address"),
			DisableReqLogs:     conf.GetBool("server.disableReqLogs"),
			JWTExpirationDelta: conf.GetDuration("server.jwtExpirationDelta"),
			ShutdownTimeout:    conf.GetDuration("server.shutdownTimeout"),
		},
	}
}

// NewTestConfig returns a Config pointing every table inside dataDir.
func NewTestConfig(dataDir string) *Config {
	return &Config{
		Env:            "TEST",
		Build:          "test",
		Debug:          true,
		TestMode:       true,
		AppName:        "CheckMyGrade",
		SecretKey:      "secret",
		PasswordHasher: "sha256",
		DataDir:        dataDir,
		Files: FilesConfig{
			Student:   "student.csv",
			Grade:     "grade.csv",
			Course:    "course.csv",
			Professor: "professor.csv",
			Account:   "authentication.csv",
		},
		Server: ServerConfig{
			DisableReqLogs:     true,
			JWTExpirationDelta: time.Hour,
			ShutdownTimeout:    time.Second,
		},
	}
}
