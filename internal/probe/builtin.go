package probe

import "github.com/tmarden/handlescout/internal/platform"

// Builtin returns the strategy table keyed by the registry's strategy
// identifiers. Platforms that resist plain status classification get
// hand-tuned probe chains here.
func Builtin() map[string]Strategy {
	return map[string]Strategy{
		platform.StrategyStatus:  GenericStatus{},
		platform.StrategyContent: ContentHeuristic{},

		// Instagram's profile pages render the same JS shell whether or
		// not the account exists; the web-profile JSON endpoint is the
		// only honest signal.
		platform.StrategyInstagramAPI: InternalAPI{
			Method:   "api",
			Endpoint: "https://www.instagram.com/api/v1/users/web_profile_info/?username={username}",
			Headers: map[string]string{
				"X-IG-App-ID":      "936619743392459",
				"X-Requested-With": "XMLHttpRequest",
			},
			UserPath: "data.user",
		},

		platform.StrategyTikTokAPI: InternalAPI{
			Method:   "api",
			Endpoint: "https://www.tiktok.com/api/user/detail/?uniqueId={username}",
			UserPath: "userInfo",
		},

		// Twitter walls the profile page behind login; chain three
		// independent read paths and take the first decisive one.
		platform.StrategyTwitterMulti: MultiEndpoint{
			Subs: []Strategy{
				ContentHeuristic{
					Method:   "search",
					Endpoint: "https://twitter.com/search?q=from%3A{username}&src=typed_query&f=user",
					Indicators: []string{
						"followers", "following", "tweets",
						"profile", "bio", "verified", "joined",
					},
					NoRedirects: true,
				},
				InternalAPI{
					Method:   "embed",
					Endpoint: "https://publish.twitter.com/oembed?url=https://twitter.com/{username}",
					UserPath: "author_name",
				},
				ContentHeuristic{
					Method:     "rss",
					Endpoint:   "https://twitter.com/{username}/rss",
					Indicators: []string{"rss", "channel"},
					MatchAll:   true,
				},
			},
		},

		platform.StrategySnapchatContent: ContentHeuristic{
			Indicators: []string{"add friend", "snapcode", "bitmoji"},
			LoginMarkers: []string{
				"page not found",
				"couldn't find this account",
			},
		},

		platform.StrategyYouTubeContent: ContentHeuristic{
			Indicators: []string{"subscribers", "videos"},
			Require:    "channel",
			LoginMarkers: []string{
				"this page isn't available",
				"404 not found",
			},
		},
	}
}
