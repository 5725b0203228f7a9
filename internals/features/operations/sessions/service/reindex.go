// file: internals/features/operations/sessions/service/reindex.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

/* =======================================================
   Reindexado de nombres de sesiones hermanas.

   Todas las sesiones de un mismo producto comparten numeración
   secuencial 1-based sin huecos. Corre dentro de la transacción
   del write que lo dispara: nunca se observa a medias.
   ======================================================= */

// SessionDisplayName compone "<base> - Sesión <n>".
func SessionDisplayName(baseName string, n int) string {
	baseName = strings.TrimSpace(baseName)
	if baseName == "" {
		return fmt.Sprintf("Sesión %d", n)
	}
	return fmt.Sprintf("%s - Sesión %d", baseName, n)
}

// ReindexSiblings recalcula el nombre de cada sesión del producto según
// su posición en el orden estable del store. Idempotente: solo renombra
// cuando el nombre guardado difiere. Devuelve el nombre final por id.
func ReindexSiblings(ctx context.Context, s SessionStore, productID uuid.UUID, baseName string) (map[uuid.UUID]string, error) {
	rows, err := s.FindSessionsForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(rows))
	for i := range rows {
		name := SessionDisplayName(baseName, i+1)
		names[rows[i].TrainingSessionID] = name
		if rows[i].TrainingSessionName == name {
			continue
		}
		if err := s.RenameSession(ctx, rows[i].TrainingSessionID, name); err != nil {
			return nil, err
		}
	}
	return names, nil
}
