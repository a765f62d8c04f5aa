package relay

// a DeFi platform the assistant can guide users through
type Platform struct {
	ID          string
	Name        string
	Description string
}

const defaultPlatformID = "movement"

// supported platform contexts, keyed by the id the extension detects from
// the page domain
var platforms = map[string]Platform{
	"uniswap": {
		ID:          "uniswap",
		Name:        "Uniswap",
		Description: "Decentralized exchange protocol for swapping tokens. Focuses on automated market making (AMM) and liquidity pools.",
	},
	"aave": {
		ID:          "aave",
		Name:        "Aave",
		Description: "Decentralized lending and borrowing protocol. Users can earn interest on deposits or borrow assets.",
	},
	"movement": {
		ID:          "movement",
		Name:        "Movement Network",
		Description: "M2 blockchain using MoveVM. High-performance Layer 2 with Move language smart contracts.",
	},
}

// returns the platform context for id, falling back to Movement for unknown ids
func LookupPlatform(id string) Platform {
	if p, ok := platforms[id]; ok {
		return p
	}

	return platforms[defaultPlatformID]
}
