package uid

import (
	"github.com/bwmarrin/snowflake"
	"github.com/labstack/gommon/log"
	"os"
	"strconv"
	"sync"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets up the snowflake node used for company and score IDs.
// Only the first call has any effect.
func Init(machineID int64) {
	once.Do(func() {
		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			log.Fatalf("failed to initialize snowflake node: %v", err)
		}
	})
}

// InitFromEnv reads the node number from SNOWFLAKE_NODE, defaulting to 1.
func InitFromEnv() {
	machineID := int64(1)
	if raw := os.Getenv("SNOWFLAKE_NODE"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatalf("invalid SNOWFLAKE_NODE %q: %v", raw, err)
		}
		machineID = parsed
	}
	Init(machineID)
}

func Generate() int64 {
	if node == nil {
		log.Fatalf("uid package not initialized")
	}
	return node.Generate().Int64()
}
