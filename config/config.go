package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port   string
	DBPath string

	// Gemini generative backend
	GeminiEndpoint string
	GeminiAPIKey   string
	GeminiModel    string
	GeminiTimeout  time.Duration
	GeminiRPM      int // requests per minute toward the model, 0 = unlimited

	// Embedding backend (OpenAI-compatible /v1/embeddings)
	EmbEndpoint string
	EmbAPIKey   string
	EmbModel    string
	EmbTimeout  time.Duration

	// RAG pipeline knobs
	ChunkSize    int
	ChunkOverlap int
	RetrieveK    int

	// Index registry bounds
	IndexCapacity int
	IndexTTL      time.Duration

	// Hosts allowed for URL ingestion
	AllowedHosts []string
}

// fileConfig is the optional config.yaml overlay. Env still wins for
// secrets and endpoints; the file only carries tuning knobs.
type fileConfig struct {
	Chunker struct {
		Size    int `yaml:"size"`
		Overlap int `yaml:"overlap"`
	} `yaml:"chunker"`
	Retrieval struct {
		TopK int `yaml:"top_k"`
	} `yaml:"retrieval"`
	Registry struct {
		Capacity int `yaml:"capacity"`
		TTLSecs  int `yaml:"ttl_secs"`
	} `yaml:"registry"`
	Timeouts struct {
		GeminiSecs int `yaml:"gemini_secs"`
		EmbedSecs  int `yaml:"embed_secs"`
	} `yaml:"timeouts"`
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}

	cfg := AppConfig{
		Port:           get("PORT", "8000"),
		DBPath:         get("DB_PATH", "propai.db"),
		GeminiEndpoint: get("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com"),
		GeminiAPIKey:   get("GEMINI_API_KEY", ""),
		GeminiModel:    get("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		GeminiTimeout:  time.Duration(getInt("GEMINI_TIMEOUT_SECS", 25)) * time.Second,
		GeminiRPM:      getInt("GEMINI_RPM", 0),
		EmbEndpoint:    get("EMB_ENDPOINT", ""),
		EmbAPIKey:      get("EMB_API_KEY", ""),
		EmbModel:       get("EMB_MODEL", "all-MiniLM-L6-v2"),
		EmbTimeout:     time.Duration(getInt("EMB_TIMEOUT_SECS", 20)) * time.Second,
		ChunkSize:      getInt("CHUNK_SIZE", 1000),
		ChunkOverlap:   getInt("CHUNK_OVERLAP", 150),
		RetrieveK:      getInt("RETRIEVE_K", 5),
		IndexCapacity:  getInt("INDEX_CAPACITY", 64),
		IndexTTL:       time.Duration(getInt("INDEX_TTL_SECS", 24*3600)) * time.Second,
	}
	for _, h := range strings.Split(get("ALLOWED_HOSTS", ""), ",") {
		if h = strings.TrimSpace(strings.ToLower(h)); h != "" {
			cfg.AllowedHosts = append(cfg.AllowedHosts, h)
		}
	}

	applyFile(&cfg, get("CONFIG_PATH", "config.yaml"))

	log.Printf("[cfg] port=%s db=%s model=%s emb=%s chunk=%d/%d k=%d",
		cfg.Port, cfg.DBPath, cfg.GeminiModel, cfg.EmbModel, cfg.ChunkSize, cfg.ChunkOverlap, cfg.RetrieveK)
	return cfg
}

func applyFile(cfg *AppConfig, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return // no file, env + defaults stand
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		log.Printf("[cfg] %s unreadable, ignoring: %v", path, err)
		return
	}
	if fc.Chunker.Size > 0 {
		cfg.ChunkSize = fc.Chunker.Size
	}
	if fc.Chunker.Overlap > 0 {
		cfg.ChunkOverlap = fc.Chunker.Overlap
	}
	if fc.Retrieval.TopK > 0 {
		cfg.RetrieveK = fc.Retrieval.TopK
	}
	if fc.Registry.Capacity > 0 {
		cfg.IndexCapacity = fc.Registry.Capacity
	}
	if fc.Registry.TTLSecs > 0 {
		cfg.IndexTTL = time.Duration(fc.Registry.TTLSecs) * time.Second
	}
	if fc.Timeouts.GeminiSecs > 0 {
		cfg.GeminiTimeout = time.Duration(fc.Timeouts.GeminiSecs) * time.Second
	}
	if fc.Timeouts.EmbedSecs > 0 {
		cfg.EmbTimeout = time.Duration(fc.Timeouts.EmbedSecs) * time.Second
	}
}
