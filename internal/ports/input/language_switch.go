package input

import "sitelang/internal/domain/entities"

type LanguageSwitchUseCase interface {
	Resolve(loc entities.Location) entities.Resolution
	Site() entities.Site
}
