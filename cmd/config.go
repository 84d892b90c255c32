package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	BasePackingFee    float64
	PricePerKm        float64
	UrgentMultiplier  float64
	SearchRadiusKm    float64
	LowStockThreshold int
}
