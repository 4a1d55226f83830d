package text

// DefaultReplacements covers terms the transcription providers reliably get
// wrong for this tool's audience. User entries are laid over these unless
// defaults are disabled entirely.
func DefaultReplacements() Replacements {
	return Replacements{
		// Wayland compositors
		"hyperland":  "Hyprland",
		"hyper land": "Hyprland",
		"neary":      "Niri",
		// Editors
		"neovim":   "Neovim",
		"neo vim":  "Neovim",
		"lazy vim": "LazyVim",
		"lazyvim":  "LazyVim",
		// Nix
		"nix os":       "NixOS",
		"home manager": "Home Manager",
		// Claude
		"cloude code": "Claude Code",
		"cloud code":  "Claude Code",
		"cloudmd":     "CLAUDE.md",
		"claudemd":    "CLAUDE.md",
		"weybar":      "waybar",
		"vtype":       "wtype",
		"jus":         "just",
		// Apps
		"ghosty":     "Ghostty",
		"sunbrowser": "Zen browser",
		"tail net":   "tailnet",
		"urinal":     "journal",
		"pmpm":       "pnpm",
		"LTAB":       "Alt Tab",
		".file":      "dotfile",
	}
}
