package models

// Condiciones de disparo soportadas para una alerta de precio
const (
	AlertConditionAbove = "above"
	AlertConditionBelow = "below"
)

// PriceAlert representa una alerta de precio creada por el usuario.
// Los nombres JSON coinciden con la colección persistida, así que los
// datos guardados por versiones anteriores siguen siendo legibles.
type PriceAlert struct {
	ID          string  `json:"id"`
	CoinID      string  `json:"coinId"`
	CoinName    string  `json:"coinName"`
	CoinSymbol  string  `json:"coinSymbol"`
	TargetPrice float64 `json:"targetPrice"`
	Condition   string  `json:"condition"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	TriggeredAt string  `json:"triggeredAt,omitempty"`
}

// AlertRequest es el cuerpo de la petición para crear una alerta.
// La validación de entrada ocurre acá, con los tags de binding: los
// repositorios asumen valores ya validados y no re-validan.
type AlertRequest struct {
	CoinID      string  `json:"coinId" binding:"required"`
	CoinName    string  `json:"coinName" binding:"required"`
	CoinSymbol  string  `json:"coinSymbol" binding:"required"`
	TargetPrice float64 `json:"targetPrice" binding:"required,gt=0"`
	Condition   string  `json:"condition" binding:"required,oneof=above below"`
}
