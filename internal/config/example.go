package config

import (
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/theme"
)

func collapsed(v bool) *bool { return &v }

// Example returns the configuration written by Init.
func Example() *Config {
	return &Config{
		Version: CurrentVersion,
		Site: SiteConfig{
			Title:       "Serinus",
			Description: "Serinus is a framework written in Dart for building efficient and scalable server-side applications.",
			BaseURL:     "https://serinus.app",
			Lang:        "en-US",
			EditLink:    "https://github.com/francescovallone/serinus/edit/main/.website/:path",
			LastUpdated: true,
		},
		Theme: ThemeConfig{Light: theme.Parchment, Dark: theme.Nocturne},
		Social: []SocialLink{
			{Icon: "github", Link: "https://github.com/francescovallone/serinus"},
			{Icon: "twitter", Link: "https://twitter.com/serinus_dart"},
			{Icon: "discord", Link: "https://discord.gg/zydgnJ3ksJ"},
		},
		Nav: []nav.Item{
			{Text: "Docs", Link: "/introduction"},
			{Text: "Blog", Link: "/blog/"},
			{Text: "Plugins", Link: "/plugins/"},
		},
		Sidebar: nav.VersionedNav{
			{Key: "/next/", Sections: []nav.Item{
				{Text: "Introduction", Items: []nav.Item{
					{Text: "What is Serinus?", Link: "/next/introduction"},
					{Text: "Quick Start", Link: "/next/quick_start"},
				}},
				{Text: "Foundations", Base: "/next/foundations/", Collapsed: collapsed(false), Items: []nav.Item{
					{Text: "Modules", Link: "modules"},
					{Text: "Controllers", Link: "controllers"},
					{Text: "Paths", Link: "paths"},
					{Text: "Providers", Link: "providers"},
				}},
			}},
			{Key: nav.DefaultVersion, Sections: []nav.Item{
				{Text: "Introduction", Items: []nav.Item{
					{Text: "What is Serinus?", Link: "/introduction"},
					{Text: "Quick Start", Link: "/quick_start"},
				}},
				{Text: "Foundations", Base: "/foundations/", Collapsed: collapsed(false), Items: []nav.Item{
					{Text: "Modules", Link: "modules"},
					{Text: "Controllers", Link: "controllers"},
					{Text: "Routes", Link: "routes"},
					{Text: "Providers", Link: "providers"},
					{Text: "Hooks", Link: "hooks"},
				}},
				{Text: "Techniques", Base: "/techniques/", Collapsed: collapsed(true), Items: []nav.Item{
					{Text: "Configuration", Link: "configuration"},
					{Text: "WebSockets", Link: "websockets"},
					{Text: "OpenAPI", Link: "openapi"},
				}},
			}},
		},
		Content: ContentConfig{Dir: ".website", DataDir: ".website/data", Types: "types.yaml"},
		Server:  ServerConfig{Addr: defaultAddr, MetricsPath: defaultMetricsPath},
		Watch:   WatchConfig{Enabled: true, Debounce: defaultDebounce},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}
