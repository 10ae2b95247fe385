package es

import (
	"io"
	"log"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/mkotelnikov/restaurant-pos/internal/config"
)

// MenuIndex is the Elasticsearch index holding menu items.
const MenuIndex = "menu"

func NewClient(cfg *config.Config) (*elasticsearch.Client, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.ES_URL},
		Username:  cfg.ES_USER,
		Password:  cfg.ES_PASSWORD,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, err
	}

	res, err := client.Info()
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		log.Printf("Elasticsearch error response: %s", body)
		return nil, &InfoError{Status: res.Status()}
	}

	return client, nil
}

type InfoError struct {
	Status string
}

func (e *InfoError) Error() string {
	return "elasticsearch error: " + e.Status
}
