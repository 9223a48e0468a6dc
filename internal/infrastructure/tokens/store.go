package tokens

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"phiCalc/internal/domain"
)

// Store хранит текущие токены и перечитывает файл при его изменении.
type Store struct {
	path string
	cur  atomic.Pointer[domain.Tokens]
	log  *slog.Logger
}

// NewStore загружает path. Пустой path — токены по умолчанию, Watch тогда ничего не делает.
func NewStore(path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{path: path, log: log}
	if path == "" {
		s.cur.Store(&domain.Tokens{})
		return s, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current возвращает последние успешно прочитанные токены.
func (s *Store) Current() domain.Tokens {
	return *s.cur.Load()
}

// Reload перечитывает файл. При ошибке прежние токены остаются.
func (s *Store) Reload() error {
	t, err := Load(s.path)
	if err != nil {
		return err
	}
	s.cur.Store(&t)
	return nil
}

// Watch следит за каталогом файла (редакторы часто заменяют файл переименованием)
// и перечитывает его при записи, создании или переименовании. Блокируется до отмены ctx.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return ctx.Err()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("tokens watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(s.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("tokens watch %s: %w", filepath.Dir(target), err)
	}
	s.log.Info("tokens watch started", "path", target)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.log.Warn("tokens reload failed, keeping previous", "path", target, "error", err)
				continue
			}
			s.log.Info("tokens reloaded", "path", target, "op", ev.Op.String())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("tokens watcher error", "error", err)
		}
	}
}
