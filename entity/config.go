package entity

type Config struct {
	PostgresConfig PostgresConfig `yaml:"database"`
	JWTSecretKey   string         `yaml:"jwt_secret"`
	ListenAddr     string         `yaml:"listen_addr"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}
