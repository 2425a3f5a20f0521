package platform

// Strategy identifiers referenced by the builtin table. The resolver maps
// these to configured strategy instances at startup.
const (
	StrategyStatus          = "status"
	StrategyInstagramAPI    = "instagram-api"
	StrategyTikTokAPI       = "tiktok-api"
	StrategyTwitterMulti    = "twitter-multi"
	StrategySnapchatContent = "snapchat-content"
	StrategyYouTubeContent  = "youtube-content"

	// StrategyContent is a generic content heuristic available to
	// user-defined platforms in the overlay file.
	StrategyContent = "content"
)

// builtin is the static platform table, loaded once at process start.
var builtin = []Platform{
	{
		Key:         "github",
		Name:        "GitHub",
		Description: "Code repository hosting",
		URLTemplate: "https://github.com/{username}",
		Capability:  Checkable,
		Strategy:    StrategyStatus,
	},
	{
		Key:         "twitter",
		Name:        "Twitter/X",
		Description: "Social media platform",
		URLTemplate: "https://twitter.com/{username}",
		Capability:  Checkable,
		Strategy:    StrategyTwitterMulti,
	},
	{
		Key:         "instagram",
		Name:        "Instagram",
		Description: "Photo sharing platform",
		URLTemplate: "https://instagram.com/{username}",
		Capability:  Checkable,
		Strategy:    StrategyInstagramAPI,
	},
	{
		Key:         "tiktok",
		Name:        "TikTok",
		Description: "Short video platform",
		URLTemplate: "https://tiktok.com/@{username}",
		Capability:  Checkable,
		Strategy:    StrategyTikTokAPI,
	},
	{
		Key:         "discord",
		Name:        "Discord",
		Description: "Gaming communication platform",
		URLTemplate: "https://discord.com/users/{username}",
		Capability:  ManualOnly,
	},
	{
		Key:         "reddit",
		Name:        "Reddit",
		Description: "Discussion platform",
		URLTemplate: "https://reddit.com/u/{username}",
		Capability:  ManualOnly,
	},
	{
		Key:         "youtube",
		Name:        "YouTube",
		Description: "Video sharing platform",
		URLTemplate: "https://youtube.com/@{username}",
		Capability:  Checkable,
		Strategy:    StrategyYouTubeContent,
	},
	{
		Key:         "twitch",
		Name:        "Twitch",
		Description: "Live streaming platform",
		URLTemplate: "https://twitch.tv/{username}",
		Capability:  ManualOnly,
	},
	{
		Key:         "spotify",
		Name:        "Spotify",
		Description: "Music streaming service",
		URLTemplate: "https://open.spotify.com/user/{username}",
		Capability:  ManualOnly,
	},
	{
		Key:         "steam",
		Name:        "Steam",
		Description: "Gaming platform",
		URLTemplate: "https://steamcommunity.com/id/{username}",
		Capability:  Checkable,
		Strategy:    StrategyStatus,
	},
	{
		Key:         "linkedin",
		Name:        "LinkedIn",
		Description: "Professional networking",
		URLTemplate: "https://linkedin.com/in/{username}",
		Capability:  ManualOnly,
	},
	{
		Key:         "snapchat",
		Name:        "Snapchat",
		Description: "Photo messaging app",
		URLTemplate: "https://snapchat.com/add/{username}",
		Capability:  Checkable,
		Strategy:    StrategySnapchatContent,
	},
}

// Builtin returns a registry populated with the builtin platform table.
func Builtin() *Registry {
	r := NewRegistry()
	for _, p := range builtin {
		// The builtin table is validated by tests; a failure here is a
		// programmer error.
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}
