package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	rtu "github.com/binsoul/modbus-codec"
)

func main() {
	rtu.InfoLogFunc = log.Printf
	rtu.DebugLogFunc = log.Printf

	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Printf("Usage: %s DEV [ADDR]\n"+
			" e.g.: %s /dev/ttyM1 1\n",
			os.Args[0],
			os.Args[0])
		os.Exit(1)
	}

	addr := 1
	if len(os.Args) == 3 {
		var err error
		if addr, err = strconv.Atoi(os.Args[2]); err != nil {
			log.Fatalf("ERR: bad ADDR %q: %s\n", os.Args[2], err)
		}
	}

	con := &rtu.Controller{
		Port: &rtu.SerialPort{
			Dev: os.Args[1],
		},
	}
	codec := rtu.NewCodec(byte(addr))

	// This is for SHT20 Temperature and Humidity Sensor
	tick := time.NewTicker(time.Second)
	for {
		<-tick.C
		regs, err := con.ReadHoldingRegisters(codec, 1, 2)
		if err != nil {
			log.Printf("ERR: %s\n", err)
			fmt.Println()
			continue
		}
		log.Printf("Temp %g Humid %g\n",
			float64(regs[0])/10,
			float64(regs[1])/10)
		fmt.Println()
	}
}
