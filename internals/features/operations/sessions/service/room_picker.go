// file: internals/features/operations/sessions/service/room_picker.go
package service

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
)

/* =======================================================
   Pre-asignación de sala para filas de import.

   Elección aleatoria equiprobable sobre el pool disponible:
   decisión de producto tolerada (el personal confirma después
   que la sala realmente queda libre). Los tests inyectan un
   RoomPicker determinista.
   ======================================================= */

type RandomRoomPicker struct {
	Catalog RoomCatalog
}

func NewRandomRoomPicker(catalog RoomCatalog) *RandomRoomPicker {
	return &RandomRoomPicker{Catalog: catalog}
}

// PickRoom devuelve nil (sin error) con pool vacío: la fila sigue sin sala.
func (p *RandomRoomPicker) PickRoom(ctx context.Context) (*uuid.UUID, error) {
	ids, err := p.Catalog.ListRoomIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	id := ids[rand.Intn(len(ids))]
	return &id, nil
}
