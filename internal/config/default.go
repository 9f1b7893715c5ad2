package config

// DefaultConfig returns the built-in Pincoin landing content used when no
// config file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Theme:   "dark",
		Panels: []PanelSection{
			{
				ID:    "hero",
				Title: "Pincoin",
				Body: []string{
					"The wallet that stays out of your way.",
					"Join the waitlist to get early access.",
				},
				Content: []string{
					"Pincoin keeps your keys on your device,",
					"your history on your terms,",
					"and your coins exactly where you left them.",
				},
			},
			{
				ID:    "features",
				Title: "Built for everyday use",
				Body: []string{
					"Send, receive and swap without leaving the keyboard.",
				},
				Content: []string{
					"Instant transfers between Pincoin users.",
					"Hardware-wallet pairing out of the box.",
					"Fee preview before every transaction.",
					"Address book with human-readable names.",
					"Export statements whenever you need them.",
					"Multi-account support with per-account limits.",
					"Watch-only mode for cold storage.",
					"Scheduled payments with cancel-any-time.",
					"Spending insights grouped by category.",
					"Open API for your own tooling.",
				},
			},
			{
				ID:    "wallet",
				Title: "Your wallet, pinned",
				Body: []string{
					"Scroll through the wallet tour.",
				},
				Content: []string{
					"Balances at a glance.",
					"One keystroke to copy your address.",
					"Transaction detail without the detour.",
					"Swipe between accounts.",
					"Everything keyboard-first.",
					"Nothing leaves your machine unencrypted.",
					"Backups you can actually restore.",
					"Recovery rehearsal mode.",
				},
			},
			{
				ID:    "security",
				Title: "Security first",
				Body: []string{
					"Audited, open source, and reproducibly built.",
				},
				Content: []string{
					"Keys never leave the secure enclave.",
					"Every release is signed and reproducible.",
				},
			},
			{
				ID:    "waitlist",
				Title: "Get early access",
				Body: []string{
					"Press enter to join the waitlist.",
				},
			},
		},
	}
}
