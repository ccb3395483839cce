package main

import (
	"errors"
	"heap"
	"strconv"

	fiber "github.com/gofiber/fiber/v2"
)

type allocRequest struct {
	Size uint32 `json:"size"`
}

type allocResponse struct {
	Offset uint32 `json:"offset"`
}

type freeRequest struct {
	Offset uint32 `json:"offset"`
}

type reallocRequest struct {
	Offset uint32 `json:"offset"`
	Size   uint32 `json:"size"`
}

func (d *daemon) logRequest(c *fiber.Ctx) *structuredEntry {
	return &structuredEntry{d: d, seq: d.seq.Next(), path: c.Path()}
}

type structuredEntry struct {
	d    *daemon
	seq  int64
	path string
}

func (e *structuredEntry) done(err error) {
	entry := e.d.log.Info()
	if err != nil {
		entry = e.d.log.Err()
	}
	entry.Value("seq", e.seq).Value("path", e.path).Msg("request")
}

func (d *daemon) handleAlloc(c *fiber.Ctx) error {
	entry := d.logRequest(c)
	var req allocRequest
	if err := c.BodyParser(&req); err != nil {
		entry.done(err)
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var offset uint32
	err := d.withHeap(func() (err error) {
		offset, err = d.h.Allocate(req.Size)
		return
	})
	entry.done(err)

	if errors.Is(err, heap.ErrOutOfMemory) {
		return fiber.NewError(fiber.StatusInsufficientStorage, err.Error())
	}
	if err != nil {
		return err
	}

	return c.JSON(allocResponse{Offset: offset})
}

func (d *daemon) handleFree(c *fiber.Ctx) error {
	entry := d.logRequest(c)
	var req freeRequest
	if err := c.BodyParser(&req); err != nil {
		entry.done(err)
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	err := d.withHeap(func() error {
		d.h.Free(req.Offset)
		return nil
	})
	entry.done(err)

	return c.SendStatus(fiber.StatusNoContent)
}

func (d *daemon) handleRealloc(c *fiber.Ctx) error {
	entry := d.logRequest(c)
	var req reallocRequest
	if err := c.BodyParser(&req); err != nil {
		entry.done(err)
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var offset uint32
	err := d.withHeap(func() (err error) {
		offset, err = d.h.Reallocate(req.Offset, req.Size)
		return
	})
	entry.done(err)

	if errors.Is(err, heap.ErrOutOfMemory) {
		return fiber.NewError(fiber.StatusInsufficientStorage, err.Error())
	}
	if err != nil {
		return err
	}

	return c.JSON(allocResponse{Offset: offset})
}

// handleStats reports free/used totals and the largest free block by
// building its response into a pooled scratch buffer rather than
// allocating a fresh one per request.
func (d *daemon) handleStats(c *fiber.Ctx) error {
	entry := d.logRequest(c)

	var stats heap.Stats
	err := d.withHeap(func() error {
		stats = d.h.Stats()
		return nil
	})
	entry.done(err)

	buf := d.bufs.Get()
	buf = buf[:0]
	buf = append(buf, '{')
	buf = appendField(buf, "free_bytes", stats.FreeBytes, false)
	buf = appendField(buf, "used_bytes", stats.UsedBytes, false)
	buf = appendField(buf, "largest_free_block", stats.LargestFreeBlock, true)
	buf = append(buf, '}')

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	err = c.Send(buf)
	d.bufs.Put(buf)
	return err
}

func appendField(buf []byte, name string, value uint32, last bool) []byte {
	buf = append(buf, '"')
	buf = append(buf, name...)
	buf = append(buf, '"', ':')
	buf = strconv.AppendUint(buf, uint64(value), 10)
	if !last {
		buf = append(buf, ',')
	}
	return buf
}
