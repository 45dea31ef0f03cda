package rtu

import (
	"io"
	"time"

	"github.com/bangzek/clock"
)

const (
	TIMEOUT = time.Second
)

var (
	ctime = clock.New()
)

// SetClock swaps the package clock, for tests.
func SetClock(c clock.Clock) {
	ctime = c
}

type PortOpener interface {
	Open(bool) (io.ReadWriteCloser, time.Duration, error)
}

// Controller owns the serial side of a query: it opens the port
// lazily, writes the request frame, waits out the inter-frame gap and
// accumulates response bytes until the codec calls the frame complete
// or the deadline passes. It never retries; that is the caller's call.
type Controller struct {
	Port    PortOpener
	Timeout time.Duration

	port   io.ReadWriteCloser
	wait   time.Duration
	repeat bool
}

func (c *Controller) Close() {
	if c.port != nil {
		c.port.Close()
		c.port = nil
	}
}

// ReadHoldingRegisters queries registers first through last of the
// codec's slave and returns the decoded values.
func (c *Controller) ReadHoldingRegisters(
	codec *Codec, first, last uint16,
) ([]uint16, error) {
	if c.Timeout <= 0 {
		c.Timeout = TIMEOUT
	}
	if c.port == nil {
		var err error
		c.port, c.wait, err = c.Port.Open(c.repeat)
		if err != nil {
			c.repeat = true
			return nil, err
		}
		c.repeat = false
	}

	tx := codec.RequestHoldingRegisters(first, last)
	debugLog("tx: % X", tx)
	debugLog("TX: %d<-RHR %d:%d", codec.DevAddr(), first, last-first+1)
	if n, err := c.port.Write(tx); err != nil {
		c.Close()
		return nil, err
	} else if n != len(tx) {
		c.Close()
		return nil, io.ErrShortWrite
	}

	time.Sleep(c.wait)

	rx := make([]byte, 0, int(last-first+1)*2+5)
	for deadline := ctime.Now().Add(c.Timeout); ; {
		n, ok, err := c.read(&rx, func() bool { return codec.Complete(rx) })
		if err != nil {
			c.Close()
			return nil, err
		} else if n > 0 {
			debugLog("rx: % X", rx)
			if !ok {
				c.Close()
				return nil, BadRxErr(rx)
			}
			break
		}

		if ctime.Now().After(deadline) {
			c.Close()
			return nil, ErrTimeout
		}
	}

	regs, err := codec.FetchHoldingRegisters(rx)
	if err != nil {
		debugLog("RX: %d->RHR %s", rx[0], err)
		return nil, err
	}
	debugLog("RX: %d->RHR %d%v", rx[0], len(regs), regs)
	return regs, nil
}

func (c *Controller) read(b *[]byte, done func() bool) (int, bool, error) {
	*b = (*b)[:cap(*b)]
	for n := 0; n < len(*b); {
		nn, err := c.port.Read((*b)[n:])
		n += nn
		*b = (*b)[:n]
		if err != nil {
			return n, false, err
		} else if nn == 0 {
			return n, false, nil
		} else if done() {
			return n, true, nil
		}
		*b = (*b)[:cap(*b)]
	}
	return len(*b), false, nil
}
