//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

const (
	panelWidth  = 128
	panelHeight = 64
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     oledFramebuffer
	kbd    *chanKeyboard
}

// New returns an RP2040/RP2350 HAL driving a 128x64 SSD1306 over I²C.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// I²C: I2C0 on GP4 (SDA) / GP5 (SCL), 400 kHz, panel at 0x3C.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	bus := machine.I2C0
	bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Width:    panelWidth,
		Height:   panelHeight,
		Address:  ssd1306.Address_128_32,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		fb:     oledFramebuffer{Device: dev},
		kbd:    &chanKeyboard{},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }

// oledFramebuffer draws into the driver's page buffer; Display() flushes it over I²C.
type oledFramebuffer struct {
	*ssd1306.Device
}

func (f oledFramebuffer) Clear() { f.ClearBuffer() }

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
