package panelsim

import "fmt"

const (
	opSWRESET = 0x01
	opSLPIN   = 0x10
	opSLPOUT  = 0x11
	opNORON   = 0x13
	opINVOFF  = 0x20
	opINVON   = 0x21
	opDISPOFF = 0x28
	opDISPON  = 0x29
	opCASET   = 0x2A
	opRASET   = 0x2B
	opRAMWR   = 0x2C
	opMADCTL  = 0x36
	opCOLMOD  = 0x3A
	opPORCTRL = 0xB2
	opGCTRL   = 0xB7
	opVCOMS   = 0xBB
)

var opNames = map[byte]string{
	opSWRESET: "SWRESET",
	opSLPIN:   "SLPIN",
	opSLPOUT:  "SLPOUT",
	opNORON:   "NORON",
	opINVOFF:  "INVOFF",
	opINVON:   "INVON",
	opDISPOFF: "DISPOFF",
	opDISPON:  "DISPON",
	opCASET:   "CASET",
	opRASET:   "RASET",
	opRAMWR:   "RAMWR",
	opMADCTL:  "MADCTL",
	opCOLMOD:  "COLMOD",
	opPORCTRL: "PORCTRL",
	opGCTRL:   "GCTRL",
	opVCOMS:   "VCOMS",
}

func opName(b byte) string {
	if n, ok := opNames[b]; ok {
		return n
	}
	return fmt.Sprintf("0x%02X", b)
}
