package example

import (
	"log"
	"time"

	"github.com/tobsenthomas2/I2C-lab/gmeter"
	"github.com/tobsenthomas2/I2C-lab/mma845x"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Example polls the accelerometer every 50ms for 30 seconds and renders the
// readings as a terminal g-force meter.
func Example() {

	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg to find the first available I²C bus.
	// Generally I2C1 on raspberry pi.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	dev, err := mma845x.NewI2C(bus, mma845x.DefaultAddress, mma845x.Range2G)
	if err != nil {
		log.Fatal(err)
	}

	if err := dev.Active(); err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()

	meter := gmeter.New(&gmeter.Opts{Width: 40, FullScale: float64(dev.Range().G())})
	defer meter.Halt()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	// stop after 30 seconds
	stop := time.After(30 * time.Second)

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			x, y, z, err := dev.ReadAllG()
			if err != nil {
				log.Fatal(err)
			}
			if err := meter.Update(x, y, z); err != nil {
				log.Fatal(err)
			}
		}
	}
}
