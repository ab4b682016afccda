package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	catalogdto "paperdrill/internal/modules/catalog/dto"
)

type seedFile struct {
	Articles []catalogdto.ImportArticle `yaml:"articles"`
}

func parseSeed(raw []byte) ([]catalogdto.ImportArticle, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(f.Articles) == 0 {
		return nil, fmt.Errorf("parse seed file: no articles")
	}
	return f.Articles, nil
}
