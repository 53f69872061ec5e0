package config

import (
	"flag"
)

const defaultDBDNS = ""

type Flags struct {
	address string

	dbDNS     string
	jwtSecret string
}

func (flags *Flags) Init() {
	flag.StringVar(&flags.address, "a", ":8080", "Address and port to run server")

	flag.StringVar(&flags.dbDNS, "d", defaultDBDNS, "db dns")
	flag.StringVar(&flags.jwtSecret, "s", "", "secret key for signing JWT tokens")

	flag.Parse()
}
