package config

import "github.com/yohamta/donburi/ecs"

// Default is the ecs layer everything renders on.
var Default = ecs.LayerDefault
