package nft

// a Nero agent NFT as reported by the chain
type NFT struct {
	TokenID    string `json:"tokenId"`
	Level      int    `json:"level"`
	XP         int    `json:"xp"`
	MaxXP      int    `json:"maxXP"`
	PlatformID string `json:"platformId"`
	TxHash     string `json:"txHash,omitempty"`
}

// on-chain token metadata in the conventional attributes shape
type Metadata struct {
	TokenID    string      `json:"tokenId"`
	Name       string      `json:"name"`
	Image      string      `json:"image"`
	Attributes []Attribute `json:"attributes"`
}

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}
