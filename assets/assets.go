// Package assets embeds the playground content: quest descriptors and TMX
// levels.
package assets

import "embed"

//go:embed levels quests
var FS embed.FS
