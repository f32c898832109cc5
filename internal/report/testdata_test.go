package report

import (
	"time"

	"github.com/cybertec-postgresql/vb6scan/internal/discovery"
	"github.com/cybertec-postgresql/vb6scan/internal/inventory"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

// sampleInventory returns a two-file inventory with known counts.
func sampleInventory() *inventory.Inventory {
	inv := inventory.NewInventory()
	inv.Timestamp = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mod := inventory.NewFileTokens(discovery.FileTypeModule, source.UTF8)
	mod.Lines = 4
	mod.AddToken(inventory.TokenRecord{Type: "LabelIdentifier", Text: "Retry", Line: 1, Pos: 0})
	mod.AddToken(inventory.TokenRecord{Type: "CallableIdentifier", Text: "DoWork", Line: 2, Pos: 8})
	mod.AddToken(inventory.TokenRecord{Type: "FileNumber", Text: "#1", Line: 3, Pos: 20})
	mod.AddToken(inventory.TokenRecord{Type: "LineContinuation", Text: "_\r\n", Line: 3, Pos: 24})
	mod.Diagnostics = []string{"Module1.bas:4:5: unterminated string literal"}
	inv.Files["Module1.bas"] = mod

	cls := inventory.NewFileTokens(discovery.FileTypeClass, source.Windows1252)
	cls.Lines = 2
	cls.AddToken(inventory.TokenRecord{Type: "GuidLiteral", Text: "{550e8400-e29b-41d4-a716-446655440000}", Line: 1, Pos: 9})
	cls.AddToken(inventory.TokenRecord{Type: "DateLiteral", Text: "#1/1/2024#", Line: 2, Pos: 60})
	inv.Files["<Class1>.cls"] = cls

	return inv
}
