package models

// HomepageContent est une variante de bannière d'accueil. Exactement une
// variante doit être active à la fois, et la collection ne doit jamais
// devenir vide.
type HomepageContent struct {
	ID             string `json:"id"`
	HeroImage      string `json:"heroImage"`
	HeroTitle      string `json:"heroTitle"`
	HeroSubtitle   string `json:"heroSubtitle"`
	HeroButtonText string `json:"heroButtonText"`
	HeroButtonLink string `json:"heroButtonLink"`
	IsActive       bool   `json:"isActive"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// HomepagePatch : champs modifiables d'une variante (nil = non fourni).
type HomepagePatch struct {
	HeroImage      *string `json:"heroImage"`
	HeroTitle      *string `json:"heroTitle"`
	HeroSubtitle   *string `json:"heroSubtitle"`
	HeroButtonText *string `json:"heroButtonText"`
	HeroButtonLink *string `json:"heroButtonLink"`
}

func (patch HomepagePatch) Apply(content *HomepageContent) {
	if patch.HeroImage != nil {
		content.HeroImage = *patch.HeroImage
	}
	if patch.HeroTitle != nil {
		content.HeroTitle = *patch.HeroTitle
	}
	if patch.HeroSubtitle != nil {
		content.HeroSubtitle = *patch.HeroSubtitle
	}
	if patch.HeroButtonText != nil {
		content.HeroButtonText = *patch.HeroButtonText
	}
	if patch.HeroButtonLink != nil {
		content.HeroButtonLink = *patch.HeroButtonLink
	}
}
