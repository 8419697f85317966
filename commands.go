package st7789

// ST7789 command opcodes.
const (
	cmdSWRESET = 0x01 // Software reset
	cmdSLPIN   = 0x10 // Sleep in
	cmdSLPOUT  = 0x11 // Sleep out
	cmdNORON   = 0x13 // Normal display mode on
	cmdINVOFF  = 0x20 // Display inversion off
	cmdINVON   = 0x21 // Display inversion on
	cmdDISPOFF = 0x28 // Display off
	cmdDISPON  = 0x29 // Display on
	cmdCASET   = 0x2A // Column address set
	cmdRASET   = 0x2B // Row address set
	cmdRAMWR   = 0x2C // Memory write
	cmdMADCTL  = 0x36 // Memory data access control
	cmdCOLMOD  = 0x3A // Interface pixel format
	cmdPORCTRL = 0xB2 // Porch setting
	cmdGCTRL   = 0xB7 // Gate control
	cmdVCOMS   = 0xBB // VCOM setting
)

// Command payloads written during Init.
const (
	colorMode65K = 0x55 // 16 bits per pixel on both interfaces
	gateControl  = 0x75 // VGH 14.97V, VGL -10.43V
	vcomSetting  = 0x2B // 1.175V
)

// porchTiming is the PORCTRL payload.
var porchTiming = [5]byte{
	0x0C, // VBP: 12
	0x0C, // VFP: 12
	0x00, // PSON off, HBP high bits
	0x18, // HFP: 24
	0x04, // HBP: 4
}

// Controller RAM size. Panels smaller than this are mapped through
// Opts.XOffset and Opts.YOffset.
const (
	ramWidth  = 240
	ramHeight = 320
)
