package demo

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Teardown optionally drops the demo collection. dropFlag forces the drop
// without prompting. Otherwise an interactive run gets a yes/no prompt,
// where only the literal "yes" (case-insensitive) triggers the drop;
// non-interactive runs without the flag keep the data.
func (d *Driver) Teardown(ctx context.Context, coll Dropper, dropFlag, interactive bool) {
	drop := dropFlag
	if !drop && interactive {
		fmt.Fprintf(d.out, "Drop collection %q? (yes/no): ", coll.Name())
		line, err := bufio.NewReader(d.in).ReadString('\n')
		if err != nil && line == "" {
			return
		}
		drop = strings.EqualFold(strings.TrimSpace(line), "yes")
	}
	if !drop {
		return
	}
	if err := coll.Drop(ctx); err != nil {
		d.logger.Warn("drop collection failed", zap.String("collection", coll.Name()), zap.Error(err))
		return
	}
	d.logger.Info("collection dropped", zap.String("collection", coll.Name()))
}
