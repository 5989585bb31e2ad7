package env

import (
	"log"
	"strconv"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zenv"
)

type EnvStruct struct {
	HOME     string `zog:"HOME"`
	XDG_HOME string `zog:"XDG_HOME"`
	// Port the local backend listens on. 8000 matches the reference
	// backend's default.
	PORT     int    `zog:"WEBPILOT_ENV_PORT"`
	BASE_URL string `zog:"WEBPILOT_BASE_URL"`

	LISTEN_ADDR string
	LISTEN_PROT string
}

var env *EnvStruct

var EnvSchema = z.Struct(z.Shape{
	"HOME":     z.String(),
	"XDG_HOME": z.String(),
	"PORT":     z.Int().Default(8000),
	"BASE_URL": z.String().Optional(),
})

func Get() *EnvStruct {
	if env == nil {
		env = &EnvStruct{}
		errs := EnvSchema.Parse(zenv.NewDataProvider(), env)
		if errs != nil {
			log.Fatal("[Webpilot] Failed to parse environment variables", errs)
		}

		env.LISTEN_PROT = "http://"
		env.LISTEN_ADDR = "localhost:" + strconv.Itoa(env.PORT)
		if env.BASE_URL == "" {
			env.BASE_URL = env.LISTEN_PROT + env.LISTEN_ADDR
		}
		env.BASE_URL = strings.TrimRight(env.BASE_URL, "/")
	}
	return env
}
