// Tag lifecycle integration tests: typed set, get, remove, clear, and
// batch atomicity over real files.
// Implements: prd002-value-parser; prd005-tag-operations.
package integration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

const reportTask = `---
title: Weekly report
status: open
date: 2026-08-30
created: 2026-08-30T09:00:00Z
---

# Weekly report

Summarize the sprint.
`

func TestTagLifecycle(t *testing.T) {
	engine, dir := setupSatchel(t)
	path := mustWriteTask(t, dir, "report.md", reportTask)

	_, err := engine.Set("report", nil, []string{
		"status=done",
		"priority=2",
		"tags=work,urgent",
		"archived=false",
		"due=+3d",
	})
	require.NoError(t, err)

	task, err := engine.List("report", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "status", "date", "created", "priority", "tags", "archived", "due"},
		task.Fields.Keys(), "updated keys keep insertion order")

	v, err := engine.Get("report", nil, "priority")
	require.NoError(t, err)
	assert.Equal(t, types.KindNumber, v.Kind)
	assert.Equal(t, 2.0, v.Num)

	v, err = engine.Get("report", nil, "tags")
	require.NoError(t, err)
	assert.Equal(t, types.KindList, v.Kind)
	assert.Equal(t, []string{"work", "urgent"}, v.List)

	v, err = engine.Get("report", nil, "archived")
	require.NoError(t, err)
	assert.Equal(t, types.KindBool, v.Kind)
	assert.False(t, v.Bool)

	// Relative dates land as RFC 3339 strings.
	v, err = engine.Get("report", nil, "due")
	require.NoError(t, err)
	assert.Equal(t, types.KindString, v.Kind)
	assert.Equal(t, "2026-09-03T12:00:00Z", v.Str)

	// Remove deletes the key; removing it again is a silent no-op.
	_, err = engine.Remove("report", nil, "status")
	require.NoError(t, err)
	before := mustReadFile(t, path)
	_, err = engine.Remove("report", nil, "status")
	require.NoError(t, err)
	assert.Equal(t, before, mustReadFile(t, path), "idempotent remove must not rewrite")

	// Clear keeps only the protected fields, in their original order;
	// title is user-editable and gets stripped with the rest.
	task, err = engine.Clear("report", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "created"}, task.Fields.Keys())

	// The body survives every rewrite.
	assert.Contains(t, mustReadFile(t, path), "Summarize the sprint.")
}

func TestBatchAtomicity(t *testing.T) {
	engine, dir := setupSatchel(t)
	path := mustWriteTask(t, dir, "report.md", reportTask)
	before := mustReadFile(t, path)

	_, err := engine.Set("report", nil, []string{"status=done", "=bad"})
	require.ErrorIs(t, err, types.ErrEmptyKey)
	assert.Equal(t, before, mustReadFile(t, path), "failed batch must leave the file untouched")
}

func TestCreatedImmutable(t *testing.T) {
	engine, dir := setupSatchel(t)
	mustWriteTask(t, dir, "report.md", reportTask)

	_, err := engine.Set("report", nil, []string{"created=tomorrow"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrProtectedKey))
}

func TestProtectedRemove(t *testing.T) {
	engine, dir := setupSatchel(t)
	mustWriteTask(t, dir, "report.md", reportTask)

	for _, key := range types.ProtectedKeys {
		_, err := engine.Remove("report", nil, key)
		assert.ErrorIs(t, err, types.ErrProtectedKey, "remove %s", key)
	}
}
