package model

import "github.com/futig/contract-workbench/internal/entity"

type ModelCatalog interface {
	List() []entity.ModelOption
	GetModelInfo(value string) (entity.ModelOption, bool)
}
