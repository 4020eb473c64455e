package shop

type Shop struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}
