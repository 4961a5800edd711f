package jsonfile

type Config struct {
	Path string `envconfig:"JSON_PATH" default:"bank.json"`
}
