// Package replication assembles per-entity net-element deltas into the wire
// packets exchanged between a master world and its connected observers, and
// decodes the inbound side of that same exchange. Framing and scalar
// encoding are internal/wire's job; this package only defines the packet
// shapes layered on top of it and the per-connection bookkeeping that
// decides which shape a given entity needs this tick.
package replication

import (
	"fmt"

	"sandboxcore/server/internal/core"
	"sandboxcore/server/internal/entity"
	"sandboxcore/server/internal/wire"
)

// PacketType tags the body that follows it in an encoded frame.
type PacketType byte

const (
	PacketEntityCreate PacketType = iota + 1
	PacketEntityDestroy
	PacketEntityUpdate
	PacketEntityMessage
	PacketEntityMessageResult
	PacketRemoteHitRequest
	PacketRemoteDamageRequest
)

// EntityCreate is sent server to clients on spawn; InitPayload is the
// entity's net-element group encoded with WriteFull.
type EntityCreate struct {
	EntityID         entity.ID
	EntityType       string
	ClientID         string
	MasterConnection bool
	InitPayload      []byte
}

func (p EntityCreate) encode(w *wire.Writer) {
	w.WriteVLQU(uint64(p.EntityID))
	w.WriteString(p.EntityType)
	w.WriteString(p.ClientID)
	if p.MasterConnection {
		w.WriteByte(1)
	} else {
		w.WriteByte(0)
	}
	wire.WriteFrame(w, p.InitPayload)
}

func decodeEntityCreate(r *wire.Reader) (EntityCreate, error) {
	var p EntityCreate
	id, err := r.ReadVLQU()
	if err != nil {
		return p, err
	}
	p.EntityID = entity.ID(id)
	if p.EntityType, err = r.ReadString(); err != nil {
		return p, err
	}
	if p.ClientID, err = r.ReadString(); err != nil {
		return p, err
	}
	masterByte, err := r.ReadByte()
	if err != nil {
		return p, err
	}
	p.MasterConnection = masterByte != 0
	if p.InitPayload, err = wire.ReadFrame(r); err != nil {
		return p, err
	}
	return p, nil
}

// EntityDestroy is sent when the master destroys an entity. FinalState is
// empty unless the destroyed entity had persisted state worth echoing back
// (e.g. a death payload an observer's UI wants without waiting on a
// separate query).
type EntityDestroy struct {
	EntityID   entity.ID
	FinalState []byte
}

func (p EntityDestroy) encode(w *wire.Writer) {
	w.WriteVLQU(uint64(p.EntityID))
	wire.WriteFrame(w, p.FinalState)
}

func decodeEntityDestroy(r *wire.Reader) (EntityDestroy, error) {
	var p EntityDestroy
	id, err := r.ReadVLQU()
	if err != nil {
		return p, err
	}
	p.EntityID = entity.ID(id)
	if p.FinalState, err = wire.ReadFrame(r); err != nil {
		return p, err
	}
	return p, nil
}

// EntityDeltaEntry is one row of an EntityUpdate batch.
type EntityDeltaEntry struct {
	EntityID   entity.ID
	Delta      []byte
	NewVersion uint64
}

// EntityUpdate batches every entity with a non-empty delta since the
// connection's acknowledged version, sent once per network tick.
type EntityUpdate struct {
	Batch []EntityDeltaEntry
}

func (p EntityUpdate) encode(w *wire.Writer) {
	w.WriteVLQU(uint64(len(p.Batch)))
	for _, entry := range p.Batch {
		w.WriteVLQU(uint64(entry.EntityID))
		wire.WriteFrame(w, entry.Delta)
		w.WriteVLQU(entry.NewVersion)
	}
}

func decodeEntityUpdate(r *wire.Reader) (EntityUpdate, error) {
	var p EntityUpdate
	count, err := r.ReadVLQU()
	if err != nil {
		return p, err
	}
	p.Batch = make([]EntityDeltaEntry, 0, count)
	for i := uint64(0); i < count; i++ {
		id, err := r.ReadVLQU()
		if err != nil {
			return p, err
		}
		delta, err := wire.ReadFrame(r)
		if err != nil {
			return p, err
		}
		version, err := r.ReadVLQU()
		if err != nil {
			return p, err
		}
		p.Batch = append(p.Batch, EntityDeltaEntry{EntityID: entity.ID(id), Delta: delta, NewVersion: version})
	}
	return p, nil
}

// EntityMessage carries a script-to-script call across the wire, the same
// shape script.QueuedMessage carries within one process.
type EntityMessage struct {
	TargetID  entity.ID
	Name      string
	Args      core.Json
	PromiseID string
}

func (p EntityMessage) encode(w *wire.Writer) {
	w.WriteVLQU(uint64(p.TargetID))
	w.WriteString(p.Name)
	wire.WriteJson(w, p.Args)
	w.WriteString(p.PromiseID)
}

func decodeEntityMessage(r *wire.Reader) (EntityMessage, error) {
	var p EntityMessage
	id, err := r.ReadVLQU()
	if err != nil {
		return p, err
	}
	p.TargetID = entity.ID(id)
	if p.Name, err = r.ReadString(); err != nil {
		return p, err
	}
	if p.Args, err = wire.ReadJson(r); err != nil {
		return p, err
	}
	if p.PromiseID, err = r.ReadString(); err != nil {
		return p, err
	}
	return p, nil
}

// EntityMessageResult answers an EntityMessage once the target's script has
// run it; Err is empty on success.
type EntityMessageResult struct {
	PromiseID string
	Result    core.Json
	Err       string
}

func (p EntityMessageResult) encode(w *wire.Writer) {
	w.WriteString(p.PromiseID)
	wire.WriteJson(w, p.Result)
	w.WriteString(p.Err)
}

func decodeEntityMessageResult(r *wire.Reader) (EntityMessageResult, error) {
	var p EntityMessageResult
	var err error
	if p.PromiseID, err = r.ReadString(); err != nil {
		return p, err
	}
	if p.Result, err = wire.ReadJson(r); err != nil {
		return p, err
	}
	if p.Err, err = r.ReadString(); err != nil {
		return p, err
	}
	return p, nil
}

// RemoteHitRequest tells the causing entity's connection that a hit it
// registered landed, so its script can react via hitOther even though the
// target is mastered on a different connection.
type RemoteHitRequest struct {
	DestinationConnection string
	CausingID              entity.ID
	TargetID               entity.ID
	Req                    core.Json
}

func (p RemoteHitRequest) encode(w *wire.Writer) {
	w.WriteString(p.DestinationConnection)
	w.WriteVLQU(uint64(p.CausingID))
	w.WriteVLQU(uint64(p.TargetID))
	wire.WriteJson(w, p.Req)
}

func decodeRemoteHitRequest(r *wire.Reader) (RemoteHitRequest, error) {
	var p RemoteHitRequest
	var err error
	if p.DestinationConnection, err = r.ReadString(); err != nil {
		return p, err
	}
	causing, err := r.ReadVLQU()
	if err != nil {
		return p, err
	}
	p.CausingID = entity.ID(causing)
	target, err := r.ReadVLQU()
	if err != nil {
		return p, err
	}
	p.TargetID = entity.ID(target)
	if p.Req, err = wire.ReadJson(r); err != nil {
		return p, err
	}
	return p, nil
}

// RemoteDamageRequest is the target-side counterpart of RemoteHitRequest,
// delivered to the connection that masters the struck entity so it can run
// the damage pipeline locally.
type RemoteDamageRequest struct {
	DestinationConnection string
	CausingID              entity.ID
	TargetID               entity.ID
	Req                    core.Json
}

func (p RemoteDamageRequest) encode(w *wire.Writer) {
	w.WriteString(p.DestinationConnection)
	w.WriteVLQU(uint64(p.CausingID))
	w.WriteVLQU(uint64(p.TargetID))
	wire.WriteJson(w, p.Req)
}

func decodeRemoteDamageRequest(r *wire.Reader) (RemoteDamageRequest, error) {
	var p RemoteDamageRequest
	var err error
	if p.DestinationConnection, err = r.ReadString(); err != nil {
		return p, err
	}
	causing, err := r.ReadVLQU()
	if err != nil {
		return p, err
	}
	p.CausingID = entity.ID(causing)
	target, err := r.ReadVLQU()
	if err != nil {
		return p, err
	}
	p.TargetID = entity.ID(target)
	if p.Req, err = wire.ReadJson(r); err != nil {
		return p, err
	}
	return p, nil
}

// encodable is any packet body this package knows how to frame.
type encodable interface {
	encode(w *wire.Writer)
}

func encodePacket(pt PacketType, body encodable) []byte {
	w := wire.NewWriter()
	w.WriteByte(byte(pt))
	body.encode(w)
	return w.Bytes()
}

// EncodeEntityCreate renders one EntityCreate packet: its type byte then its
// body, with no length prefix; joinFrames adds the framing when packets are
// batched for a connection.
func EncodeEntityCreate(p EntityCreate) []byte { return encodePacket(PacketEntityCreate, p) }

// EncodeEntityDestroy renders one EntityDestroy packet.
func EncodeEntityDestroy(p EntityDestroy) []byte { return encodePacket(PacketEntityDestroy, p) }

// EncodeEntityUpdate renders one EntityUpdate packet.
func EncodeEntityUpdate(p EntityUpdate) []byte { return encodePacket(PacketEntityUpdate, p) }

// EncodeEntityMessage renders one EntityMessage packet.
func EncodeEntityMessage(p EntityMessage) []byte { return encodePacket(PacketEntityMessage, p) }

// EncodeEntityMessageResult renders one EntityMessageResult packet.
func EncodeEntityMessageResult(p EntityMessageResult) []byte {
	return encodePacket(PacketEntityMessageResult, p)
}

// EncodeRemoteHitRequest renders one RemoteHitRequest packet.
func EncodeRemoteHitRequest(p RemoteHitRequest) []byte {
	return encodePacket(PacketRemoteHitRequest, p)
}

// EncodeRemoteDamageRequest renders one RemoteDamageRequest packet.
func EncodeRemoteDamageRequest(p RemoteDamageRequest) []byte {
	return encodePacket(PacketRemoteDamageRequest, p)
}

// Decode reads a packet's type byte and dispatches to the matching body
// decoder, returning the decoded struct as an any for the caller to type
// switch on.
func Decode(payload []byte) (PacketType, any, error) {
	r := wire.NewReader(payload)
	typeByte, err := r.ReadByte()
	if err != nil {
		return 0, nil, err
	}
	pt := PacketType(typeByte)
	switch pt {
	case PacketEntityCreate:
		v, err := decodeEntityCreate(r)
		return pt, v, err
	case PacketEntityDestroy:
		v, err := decodeEntityDestroy(r)
		return pt, v, err
	case PacketEntityUpdate:
		v, err := decodeEntityUpdate(r)
		return pt, v, err
	case PacketEntityMessage:
		v, err := decodeEntityMessage(r)
		return pt, v, err
	case PacketEntityMessageResult:
		v, err := decodeEntityMessageResult(r)
		return pt, v, err
	case PacketRemoteHitRequest:
		v, err := decodeRemoteHitRequest(r)
		return pt, v, err
	case PacketRemoteDamageRequest:
		v, err := decodeRemoteDamageRequest(r)
		return pt, v, err
	default:
		return pt, nil, fmt.Errorf("replication: unknown packet type %d", typeByte)
	}
}
