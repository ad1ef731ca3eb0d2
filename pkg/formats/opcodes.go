package formats

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Script instruction errors.
var (
	ErrUnknownOpcode        = errors.New("unknown script opcode")
	ErrTruncatedInstruction = errors.New("truncated script instruction")
	ErrOperandCount         = errors.New("operand count mismatch")
)

// Opcode is the first byte of a script instruction.
type Opcode uint8

// OperandKind is the encoding of one instruction operand.
type OperandKind uint8

// Operand kinds.
const (
	OperandU8 OperandKind = iota
	OperandI8
	OperandU16
	OperandI16
	OperandFixed16
	OperandUFixed16
)

// Size returns the encoded width in bytes.
func (k OperandKind) Size() int {
	switch k {
	case OperandU8, OperandI8:
		return 1
	default:
		return 2
	}
}

// String returns the kind name.
func (k OperandKind) String() string {
	switch k {
	case OperandU8:
		return "u8"
	case OperandI8:
		return "i8"
	case OperandU16:
		return "u16"
	case OperandI16:
		return "i16"
	case OperandFixed16:
		return "fixed16"
	case OperandUFixed16:
		return "ufixed16"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

func (k OperandKind) decode(b []byte) int32 {
	switch k {
	case OperandU8:
		return int32(b[0])
	case OperandI8:
		return int32(int8(b[0]))
	case OperandU16, OperandUFixed16:
		return int32(binary.LittleEndian.Uint16(b))
	default:
		return int32(int16(binary.LittleEndian.Uint16(b)))
	}
}

func (k OperandKind) encode(b []byte, v int32) []byte {
	if k.Size() == 1 {
		return append(b, byte(v))
	}
	return binary.LittleEndian.AppendUint16(b, uint16(v))
}

// OperandSpec names one field of an instruction layout.
type OperandSpec struct {
	Name string
	Kind OperandKind
}

type opcodeInfo struct {
	name     string
	operands []OperandSpec
}

// Valid reports whether the opcode is defined.
func (op Opcode) Valid() bool {
	return int(op) < len(opcodes)
}

// String returns the opcode mnemonic.
func (op Opcode) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Unknown(0x%02X)", uint8(op))
	}
	return opcodes[op].name
}

// Operands returns the operand layout of the opcode.
func (op Opcode) Operands() []OperandSpec {
	if !op.Valid() {
		return nil
	}
	return opcodes[op].operands
}

// Size returns the encoded instruction length including the opcode byte, or 0 if undefined.
func (op Opcode) Size() int {
	if !op.Valid() {
		return 0
	}
	n := 1
	for _, o := range opcodes[op].operands {
		n += o.Kind.Size()
	}
	return n
}

// OpensBlock reports whether the opcode starts a nested block.
func (op Opcode) OpensBlock() bool {
	switch op {
	case OpIfElCk, OpFor, OpWhile, OpDo, OpSwitch, OpFor2:
		return true
	}
	return false
}

// ClosesBlock reports whether the opcode ends a nested block.
func (op Opcode) ClosesBlock() bool {
	switch op {
	case OpEndIf, OpNext, OpEWhile, OpEdWhile, OpESwitch:
		return true
	}
	return false
}

// Instruction is one decoded script instruction.
// Args holds operand values in layout order; 16-bit fixed-point operands keep their raw value.
type Instruction struct {
	Op   Opcode
	Args []int32
}

// Operand is a named operand value.
type Operand struct {
	OperandSpec
	Value int32
}

// DecodeInstruction decodes the instruction at the start of data and returns its length.
func DecodeInstruction(data []byte) (Instruction, int, error) {
	if len(data) == 0 {
		return Instruction{}, 0, fmt.Errorf("%w: missing opcode", ErrTruncatedInstruction)
	}

	op := Opcode(data[0])
	if !op.Valid() {
		return Instruction{}, 0, fmt.Errorf("%w: 0x%02X", ErrUnknownOpcode, data[0])
	}
	size := op.Size()
	if len(data) < size {
		return Instruction{}, 0, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncatedInstruction, op, size, len(data))
	}

	in := Instruction{Op: op}
	specs := op.Operands()
	if len(specs) > 0 {
		in.Args = make([]int32, len(specs))
	}
	pos := 1
	for i, spec := range specs {
		in.Args[i] = spec.Kind.decode(data[pos:])
		pos += spec.Kind.Size()
	}

	return in, size, nil
}

// Size returns the encoded length of the instruction.
func (in Instruction) Size() int {
	return in.Op.Size()
}

// Operands pairs each argument with its layout entry.
func (in Instruction) Operands() []Operand {
	specs := in.Op.Operands()
	ops := make([]Operand, 0, len(specs))
	for i, spec := range specs {
		var v int32
		if i < len(in.Args) {
			v = in.Args[i]
		}
		ops = append(ops, Operand{OperandSpec: spec, Value: v})
	}
	return ops
}

// Arg returns the operand with the given name.
func (in Instruction) Arg(name string) (int32, bool) {
	for i, spec := range in.Op.Operands() {
		if spec.Name == name && i < len(in.Args) {
			return in.Args[i], true
		}
	}
	return 0, false
}

// MarshalBinary encodes the instruction.
func (in Instruction) MarshalBinary() ([]byte, error) {
	if !in.Op.Valid() {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownOpcode, uint8(in.Op))
	}
	specs := in.Op.Operands()
	if len(in.Args) != len(specs) {
		return nil, fmt.Errorf("%w: %s takes %d operands, got %d", ErrOperandCount, in.Op, len(specs), len(in.Args))
	}

	out := make([]byte, 1, in.Size())
	out[0] = byte(in.Op)
	for i, spec := range specs {
		out = spec.Kind.encode(out, in.Args[i])
	}
	return out, nil
}

// String formats the instruction as Name{field: value, ...}.
func (in Instruction) String() string {
	ops := in.Operands()
	if len(ops) == 0 {
		return in.Op.String()
	}

	var b strings.Builder
	b.WriteString(in.Op.String())
	b.WriteByte('{')
	for i, o := range ops {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %d", o.Name, o.Value)
	}
	b.WriteByte('}')
	return b.String()
}

// Instruction opcodes.
const (
	OpNop            Opcode = 0x00
	OpEvtEnd         Opcode = 0x01
	OpEvtNext        Opcode = 0x02
	OpEvtChain       Opcode = 0x03
	OpEvtExec        Opcode = 0x04
	OpEvtKill        Opcode = 0x05
	OpIfElCk         Opcode = 0x06
	OpElseCk         Opcode = 0x07
	OpEndIf          Opcode = 0x08
	OpSleep          Opcode = 0x09
	OpSleeping       Opcode = 0x0A
	OpWSleep         Opcode = 0x0B
	OpWSleeping      Opcode = 0x0C
	OpFor            Opcode = 0x0D
	OpNext           Opcode = 0x0E
	OpWhile          Opcode = 0x0F
	OpEWhile         Opcode = 0x10
	OpDo             Opcode = 0x11
	OpEdWhile        Opcode = 0x12
	OpSwitch         Opcode = 0x13
	OpCase           Opcode = 0x14
	OpDefault        Opcode = 0x15
	OpESwitch        Opcode = 0x16
	OpGoto           Opcode = 0x17
	OpGoSub          Opcode = 0x18
	OpReturn         Opcode = 0x19
	OpBreak          Opcode = 0x1A
	OpFor2           Opcode = 0x1B
	OpBreakPoint     Opcode = 0x1C
	OpWorkCopy       Opcode = 0x1D
	OpNop1E          Opcode = 0x1E
	OpNop1F          Opcode = 0x1F
	OpNop20          Opcode = 0x20
	OpCk             Opcode = 0x21
	OpSet            Opcode = 0x22
	OpCmp            Opcode = 0x23
	OpSave           Opcode = 0x24
	OpCopy           Opcode = 0x25
	OpCalc           Opcode = 0x26
	OpCalc2          Opcode = 0x27
	OpSceRnd         Opcode = 0x28
	OpCutChg         Opcode = 0x29
	OpCutOld         Opcode = 0x2A
	OpMessageOn      Opcode = 0x2B
	OpAotSet         Opcode = 0x2C
	OpObjModelSet    Opcode = 0x2D
	OpWorkSet        Opcode = 0x2E
	OpSpeedSet       Opcode = 0x2F
	OpAddSpeed       Opcode = 0x30
	OpAddASpeed      Opcode = 0x31
	OpPosSet         Opcode = 0x32
	OpDirSet         Opcode = 0x33
	OpMemberSet      Opcode = 0x34
	OpMemberSet2     Opcode = 0x35
	OpSeOn           Opcode = 0x36
	OpScaIdSet       Opcode = 0x37
	OpFlrSet         Opcode = 0x38
	OpDirCk          Opcode = 0x39
	OpSceEsprOn      Opcode = 0x3A
	OpDoorAotSet     Opcode = 0x3B
	OpCutAuto        Opcode = 0x3C
	OpMemberCopy     Opcode = 0x3D
	OpMemberCmp      Opcode = 0x3E
	OpPlcMotion      Opcode = 0x3F
	OpPlcDest        Opcode = 0x40
	OpPlcNeck        Opcode = 0x41
	OpPlcRet         Opcode = 0x42
	OpPlcFlg         Opcode = 0x43
	OpSceEmSet       Opcode = 0x44
	OpColChgSet      Opcode = 0x45
	OpAotReset       Opcode = 0x46
	OpAotOn          Opcode = 0x47
	OpSuperSet       Opcode = 0x48
	OpSuperReset     Opcode = 0x49
	OpPlcGun         Opcode = 0x4A
	OpCutReplace     Opcode = 0x4B
	OpSceEsprKill    Opcode = 0x4C
	OpDoorModelSet   Opcode = 0x4D
	OpItemAotSet     Opcode = 0x4E
	OpSceKeyCk       Opcode = 0x4F
	OpSceTrgCk       Opcode = 0x50
	OpSceBgmControl  Opcode = 0x51
	OpSceEsprControl Opcode = 0x52
	OpSceFadeSet     Opcode = 0x53
	OpSceEspr3dOn    Opcode = 0x54
	OpMemberCalc     Opcode = 0x55
	OpMemberCalc2    Opcode = 0x56
	OpSceBgmTblSet   Opcode = 0x57
	OpPlcRot         Opcode = 0x58
	OpXaOn           Opcode = 0x59
	OpWeaponChg      Opcode = 0x5A
	OpPlcCnt         Opcode = 0x5B
	OpSceShakeOn     Opcode = 0x5C
	OpMizuDivSet     Opcode = 0x5D
	OpKeepItemCk     Opcode = 0x5E
	OpXaVol          Opcode = 0x5F
	OpKageSet        Opcode = 0x60
	OpCutBeSet       Opcode = 0x61
	OpSceItemLost    Opcode = 0x62
	OpPlcGunEff      Opcode = 0x63
	OpSceEsprOn2     Opcode = 0x64
	OpSceEsprKill2   Opcode = 0x65
	OpPlcStop        Opcode = 0x66
	OpAotSet4p       Opcode = 0x67
	OpDoorAotSet4p   Opcode = 0x68
	OpItemAotSet4p   Opcode = 0x69
	OpLightPosSet    Opcode = 0x6A
	OpLightKidoSet   Opcode = 0x6B
	OpRbjReset       Opcode = 0x6C
	OpSceScrMove     Opcode = 0x6D
	OpPartsSet       Opcode = 0x6E
	OpMovieOn        Opcode = 0x6F
	OpSplcRet        Opcode = 0x70
	OpSplcSce        Opcode = 0x71
	OpSuperOn        Opcode = 0x72
	OpMirrorSet      Opcode = 0x73
	OpSceFadeAdjust  Opcode = 0x74
	OpSceEspr3dOn2   Opcode = 0x75
	OpSceItemGet     Opcode = 0x76
	OpSceLineStart   Opcode = 0x77
	OpSceLineMain    Opcode = 0x78
	OpSceLineEnd     Opcode = 0x79
	OpScePartsBomb   Opcode = 0x7A
	OpScePartsDown   Opcode = 0x7B
	OpLightColorSet  Opcode = 0x7C
	OpLightPosSet2   Opcode = 0x7D
	OpLightKidoSet2  Opcode = 0x7E
	OpLightColorSet2 Opcode = 0x7F
	OpSeVol          Opcode = 0x80
	OpKeepItemCk2    Opcode = 0x81
	OpSceEsprTask    Opcode = 0x82
	OpPlcHeal        Opcode = 0x83
	OpStMapHint      Opcode = 0x84
	OpSceEmPosCk     Opcode = 0x85
	OpPoisonCk       Opcode = 0x86
	OpPoisonClr      Opcode = 0x87
	OpSceItemLost2   Opcode = 0x88
	OpEvtNext2       Opcode = 0x89
	OpVibSet0        Opcode = 0x8A
	OpVibSet1        Opcode = 0x8B
	OpVibFadeSet     Opcode = 0x8C
	OpItemAotSet2    Opcode = 0x8D
	OpSceEmSet2      Opcode = 0x8E
)

// opcodes is indexed by opcode value.
var opcodes = [...]opcodeInfo{
	{"Nop", nil},
	{"EvtEnd", []OperandSpec{{"value", OperandU8}}},
	{"EvtNext", nil},
	{"EvtChain", []OperandSpec{{"value", OperandU8}}},
	{"EvtExec", []OperandSpec{{"data", OperandU8}, {"goSub", OperandU8}, {"scdId", OperandU8}}},
	{"EvtKill", []OperandSpec{{"value", OperandU8}}},
	{"IfElCk", []OperandSpec{{"align", OperandU8}, {"size", OperandI16}}},
	{"ElseCk", []OperandSpec{{"align", OperandU8}, {"size", OperandI16}}},
	{"EndIf", []OperandSpec{{"value", OperandU8}}},
	{"Sleep", nil},
	{"Sleeping", []OperandSpec{{"value", OperandI16}}},
	{"WSleep", nil},
	{"WSleeping", nil},
	{"For", []OperandSpec{{"align", OperandU8}, {"size", OperandU16}, {"count", OperandU16}}},
	{"Next", []OperandSpec{{"value", OperandU8}}},
	{"While", []OperandSpec{{"align", OperandU8}, {"size", OperandU16}}},
	{"EWhile", []OperandSpec{{"value", OperandU8}}},
	{"Do", []OperandSpec{{"align", OperandU8}, {"size", OperandU16}}},
	{"EdWhile", []OperandSpec{{"value", OperandU8}}},
	{"Switch", []OperandSpec{{"id", OperandU8}, {"size", OperandU16}}},
	{"Case", []OperandSpec{{"align", OperandU8}, {"size", OperandU16}, {"value", OperandU16}}},
	{"Default", []OperandSpec{{"value", OperandU8}}},
	{"ESwitch", []OperandSpec{{"value", OperandU8}}},
	{"Goto", []OperandSpec{{"ifelCtr", OperandU8}, {"loopCtr", OperandU8}, {"align", OperandU8}, {"offset", OperandI16}}},
	{"GoSub", []OperandSpec{{"value", OperandU8}}},
	{"Return", []OperandSpec{{"value", OperandU8}}},
	{"Break", []OperandSpec{{"value", OperandU8}}},
	{"For2", []OperandSpec{{"align", OperandU8}, {"startValue", OperandI16}, {"align2", OperandU8}, {"endValue", OperandI16}}},
	{"BreakPoint", nil},
	{"WorkCopy", []OperandSpec{{"source", OperandU8}, {"destination", OperandU8}, {"cast", OperandU8}}},
	{"Nop1E", nil},
	{"Nop1F", nil},
	{"Nop20", nil},
	{"Ck", []OperandSpec{{"flag", OperandU8}, {"id", OperandU8}, {"onOff", OperandU8}}},
	{"Set", []OperandSpec{{"flag", OperandU8}, {"id", OperandU8}, {"onOff", OperandU8}}},
	{"Cmp", []OperandSpec{{"align", OperandU8}, {"member", OperandU8}, {"operator", OperandU8}, {"value", OperandI16}}},
	{"Save", []OperandSpec{{"destination", OperandU8}, {"source", OperandI16}}},
	{"Copy", []OperandSpec{{"destination", OperandU8}, {"source", OperandU8}}},
	{"Calc", []OperandSpec{{"align", OperandU8}, {"operator", OperandU8}, {"flag", OperandU8}, {"value", OperandI16}}},
	{"Calc2", []OperandSpec{{"operator", OperandU8}, {"flag", OperandU8}, {"value", OperandU8}}},
	{"SceRnd", nil},
	{"CutChg", []OperandSpec{{"value", OperandU8}}},
	{"CutOld", nil},
	{"MessageOn", []OperandSpec{{"align", OperandU8}, {"type", OperandU8}, {"message", OperandU8}, {"displayTime", OperandU16}}},
	{"AotSet", []OperandSpec{{"aot", OperandI8}, {"sce", OperandU8}, {"sat", OperandU8}, {"nFloor", OperandU8}, {"super", OperandU8}, {"x", OperandFixed16}, {"z", OperandFixed16}, {"w", OperandUFixed16}, {"h", OperandUFixed16}, {"data0", OperandU16}, {"data1", OperandU16}, {"data2", OperandU16}}},
	{"ObjModelSet", []OperandSpec{{"md1", OperandU8}, {"id", OperandU8}, {"ccolOld", OperandU8}, {"ccolNo", OperandU8}, {"ctexOld", OperandU8}, {"nFloor", OperandU8}, {"super", OperandU8}, {"type", OperandU16}, {"beFlag", OperandU16}, {"attribute", OperandI16}, {"x", OperandFixed16}, {"y", OperandFixed16}, {"z", OperandFixed16}, {"dirX", OperandFixed16}, {"dirY", OperandFixed16}, {"dirZ", OperandFixed16}, {"atariOffsetX", OperandFixed16}, {"atariOffsetY", OperandFixed16}, {"atariOffsetZ", OperandFixed16}, {"atariSizeX", OperandFixed16}, {"atariSizeY", OperandFixed16}, {"atariSizeZ", OperandFixed16}}},
	{"WorkSet", []OperandSpec{{"type", OperandU8}, {"entityId", OperandU8}}},
	{"SpeedSet", []OperandSpec{{"speedId", OperandU8}, {"speedValue", OperandFixed16}}},
	{"AddSpeed", nil},
	{"AddASpeed", nil},
	{"PosSet", []OperandSpec{{"align", OperandU8}, {"posX", OperandFixed16}, {"posY", OperandFixed16}, {"posZ", OperandFixed16}}},
	{"DirSet", []OperandSpec{{"align", OperandU8}, {"dirX", OperandFixed16}, {"dirY", OperandFixed16}, {"dirZ", OperandFixed16}}},
	{"MemberSet", []OperandSpec{{"destination", OperandU8}, {"source", OperandI16}}},
	{"MemberSet2", []OperandSpec{{"destination", OperandU8}, {"source", OperandU8}}},
	{"SeOn", []OperandSpec{{"vab", OperandU8}, {"edt", OperandI16}, {"data0", OperandI16}, {"x", OperandFixed16}, {"y", OperandFixed16}, {"z", OperandFixed16}}},
	{"ScaIdSet", []OperandSpec{{"iEntry", OperandU8}, {"id", OperandU16}}},
	{"FlrSet", []OperandSpec{{"id", OperandU8}, {"flag", OperandU8}}},
	{"DirCk", []OperandSpec{{"align", OperandU8}, {"x", OperandFixed16}, {"z", OperandFixed16}, {"add", OperandI16}}},
	{"SceEsprOn", []OperandSpec{{"align", OperandU8}, {"data0", OperandU16}, {"data1", OperandU16}, {"data2", OperandU16}, {"x", OperandFixed16}, {"y", OperandFixed16}, {"z", OperandFixed16}, {"dirY", OperandFixed16}}},
	{"DoorAotSet", []OperandSpec{{"aot", OperandU8}, {"sce", OperandU8}, {"sat", OperandU8}, {"nFloor", OperandU8}, {"super", OperandU8}, {"x", OperandFixed16}, {"z", OperandFixed16}, {"w", OperandUFixed16}, {"h", OperandUFixed16}, {"nextPosX", OperandFixed16}, {"nextPosY", OperandFixed16}, {"nextPosZ", OperandFixed16}, {"nextCdirY", OperandFixed16}, {"nextStage", OperandU8}, {"nextRoom", OperandU8}, {"nextCut", OperandU8}, {"nextNfloor", OperandU8}, {"dtexType", OperandU8}, {"doorType", OperandU8}, {"knockType", OperandU8}, {"keyId", OperandU8}, {"keyType", OperandU8}, {"free", OperandU8}}},
	{"CutAuto", []OperandSpec{{"value", OperandU8}}},
	{"MemberCopy", []OperandSpec{{"destination", OperandU8}, {"source", OperandU8}}},
	{"MemberCmp", []OperandSpec{{"align", OperandU8}, {"flag", OperandU8}, {"operator", OperandU8}, {"value", OperandI16}}},
	{"PlcMotion", []OperandSpec{{"motionId", OperandU8}, {"mode", OperandU8}, {"param", OperandU8}}},
	{"PlcDest", []OperandSpec{{"align", OperandU8}, {"animation", OperandU8}, {"bit", OperandU8}, {"x", OperandFixed16}, {"z", OperandFixed16}}},
	{"PlcNeck", []OperandSpec{{"op", OperandU8}, {"x", OperandFixed16}, {"y", OperandFixed16}, {"z", OperandFixed16}, {"speedX", OperandU8}, {"speedZ", OperandU8}}},
	{"PlcRet", nil},
	{"PlcFlg", []OperandSpec{{"align", OperandU8}, {"data0", OperandU8}, {"data1", OperandU8}}},
	{"SceEmSet", []OperandSpec{{"nop", OperandU8}, {"emNo", OperandI8}, {"id", OperandU8}, {"type", OperandU16}, {"nFloor", OperandU8}, {"soundFlg", OperandU8}, {"modelType", OperandU8}, {"emSetFlag", OperandU8}, {"posX", OperandFixed16}, {"posY", OperandFixed16}, {"posZ", OperandFixed16}, {"cdirY", OperandFixed16}, {"motion", OperandI16}, {"ctrFlg", OperandI16}}},
	{"ColChgSet", []OperandSpec{{"data0", OperandU8}, {"data1", OperandU8}, {"data2", OperandU8}, {"data3", OperandU8}}},
	{"AotReset", []OperandSpec{{"aot", OperandI8}, {"sce", OperandU8}, {"sat", OperandU8}, {"data0", OperandI16}, {"data1", OperandI16}, {"data2", OperandI16}}},
	{"AotOn", []OperandSpec{{"value", OperandI8}}},
	{"SuperSet", []OperandSpec{{"align", OperandU8}, {"work", OperandU8}, {"id", OperandU8}, {"pX", OperandFixed16}, {"pY", OperandFixed16}, {"pZ", OperandFixed16}, {"dX", OperandFixed16}, {"dY", OperandFixed16}, {"dZ", OperandFixed16}}},
	{"SuperReset", []OperandSpec{{"align", OperandU8}, {"dX", OperandFixed16}, {"dY", OperandFixed16}, {"dZ", OperandFixed16}}},
	{"PlcGun", []OperandSpec{{"value", OperandU8}}},
	{"CutReplace", []OperandSpec{{"id", OperandU8}, {"value", OperandU8}}},
	{"SceEsprKill", []OperandSpec{{"id", OperandU8}, {"tp", OperandU8}, {"workKind", OperandI8}, {"workNo", OperandI8}}},
	{"DoorModelSet", []OperandSpec{{"data0", OperandU8}, {"id", OperandU8}, {"ofsY", OperandU8}, {"beFlg", OperandU8}, {"data5", OperandU8}, {"data6", OperandU16}, {"x", OperandFixed16}, {"y", OperandFixed16}, {"z", OperandFixed16}, {"dirY", OperandFixed16}, {"data10", OperandU16}, {"data11", OperandU16}, {"data12", OperandU16}}},
	{"ItemAotSet", []OperandSpec{{"aot", OperandU8}, {"sce", OperandU8}, {"sat", OperandU8}, {"nFloor", OperandU8}, {"super", OperandU8}, {"x", OperandFixed16}, {"z", OperandFixed16}, {"w", OperandUFixed16}, {"h", OperandUFixed16}, {"iItem", OperandU16}, {"nItem", OperandU16}, {"flag", OperandU16}, {"md1", OperandU8}, {"action", OperandU8}}},
	{"SceKeyCk", []OperandSpec{{"flag", OperandU8}, {"value", OperandU16}}},
	{"SceTrgCk", []OperandSpec{{"flag", OperandU8}, {"value", OperandU16}}},
	{"SceBgmControl", []OperandSpec{{"id", OperandU8}, {"op", OperandU8}, {"type", OperandU8}, {"volL", OperandU8}, {"volR", OperandU8}}},
	{"SceEsprControl", []OperandSpec{{"id", OperandU8}, {"type", OperandU8}, {"return", OperandU8}, {"workKind", OperandI8}, {"workNo", OperandI8}}},
	{"SceFadeSet", []OperandSpec{{"data0", OperandU8}, {"data1", OperandU8}, {"data2", OperandU8}, {"data3", OperandU16}}},
	{"SceEspr3dOn", []OperandSpec{{"align", OperandU8}, {"data0", OperandU16}, {"data1", OperandU16}, {"data2", OperandU16}, {"x", OperandFixed16}, {"y", OperandFixed16}, {"z", OperandFixed16}, {"dirX", OperandFixed16}, {"dirY", OperandFixed16}, {"dirZ", OperandFixed16}, {"data3", OperandI16}}},
	{"MemberCalc", []OperandSpec{{"operator", OperandU8}, {"flag", OperandU16}, {"value", OperandI16}}},
	{"MemberCalc2", []OperandSpec{{"operator", OperandU8}, {"flag", OperandU8}, {"value", OperandU8}}},
	{"SceBgmTblSet", []OperandSpec{{"align", OperandU8}, {"stage", OperandU8}, {"room", OperandU8}, {"data1", OperandU16}, {"data2", OperandU16}}},
	{"PlcRot", []OperandSpec{{"id", OperandU8}, {"sceFree0", OperandU16}}},
	{"XaOn", []OperandSpec{{"mode", OperandU8}, {"number", OperandU16}}},
	{"WeaponChg", []OperandSpec{{"value", OperandU8}}},
	{"PlcCnt", []OperandSpec{{"value", OperandU8}}},
	{"SceShakeOn", []OperandSpec{{"slideOfs", OperandI8}, {"copyOfs", OperandI8}}},
	{"MizuDivSet", []OperandSpec{{"value", OperandU8}}},
	{"KeepItemCk", []OperandSpec{{"value", OperandU8}}},
	{"XaVol", []OperandSpec{{"value", OperandU8}}},
	{"KageSet", []OperandSpec{{"work", OperandU8}, {"id", OperandI8}, {"data0", OperandU8}, {"data1", OperandU8}, {"data2", OperandU8}, {"data3", OperandU16}, {"data4", OperandU16}, {"data5", OperandU16}, {"data16", OperandU16}}},
	{"CutBeSet", []OperandSpec{{"id", OperandU8}, {"value", OperandU8}, {"onOff", OperandU8}}},
	{"SceItemLost", []OperandSpec{{"value", OperandU8}}},
	{"PlcGunEff", nil},
	{"SceEsprOn2", []OperandSpec{{"dirYId2", OperandU8}, {"data1", OperandU16}, {"workKind", OperandU8}, {"workNo", OperandU8}, {"data3", OperandU16}, {"x", OperandFixed16}, {"y", OperandFixed16}, {"z", OperandFixed16}, {"dirY", OperandUFixed16}}},
	{"SceEsprKill2", []OperandSpec{{"value", OperandU8}}},
	{"PlcStop", nil},
	{"AotSet4p", []OperandSpec{{"aot", OperandU8}, {"sce", OperandU8}, {"sat", OperandU8}, {"nFloor", OperandU8}, {"super", OperandU8}, {"x0", OperandFixed16}, {"z0", OperandFixed16}, {"x1", OperandFixed16}, {"z1", OperandFixed16}, {"x2", OperandFixed16}, {"z2", OperandFixed16}, {"x3", OperandFixed16}, {"z3", OperandFixed16}, {"data0", OperandU16}, {"data1", OperandU16}, {"data2", OperandU16}}},
	{"DoorAotSet4p", []OperandSpec{{"aot", OperandU8}, {"sce", OperandU8}, {"sat", OperandU8}, {"nFloor", OperandU8}, {"super", OperandU8}, {"x0", OperandFixed16}, {"z0", OperandFixed16}, {"x1", OperandFixed16}, {"z1", OperandFixed16}, {"x2", OperandFixed16}, {"z2", OperandFixed16}, {"x3", OperandFixed16}, {"z3", OperandFixed16}, {"nextPosX", OperandFixed16}, {"nextPosY", OperandFixed16}, {"nextPosZ", OperandFixed16}, {"nextCdirY", OperandFixed16}, {"nextStage", OperandU8}, {"nextRoom", OperandU8}, {"nextCut", OperandU8}, {"nextNfloor", OperandU8}, {"dtexType", OperandU8}, {"doorType", OperandU8}, {"knockType", OperandU8}, {"keyId", OperandU8}, {"keyType", OperandU8}, {"free", OperandU8}}},
	{"ItemAotSet4p", []OperandSpec{{"aot", OperandU8}, {"sce", OperandU8}, {"sat", OperandU8}, {"nFloor", OperandU8}, {"super", OperandU8}, {"x0", OperandFixed16}, {"z0", OperandFixed16}, {"x1", OperandFixed16}, {"z1", OperandFixed16}, {"x2", OperandFixed16}, {"z2", OperandFixed16}, {"x3", OperandFixed16}, {"z3", OperandFixed16}, {"iItem", OperandU16}, {"nItem", OperandU16}, {"flag", OperandU16}, {"md1", OperandU8}, {"action", OperandU8}}},
	{"LightPosSet", []OperandSpec{{"align", OperandU8}, {"index", OperandU8}, {"xyz", OperandU8}, {"position", OperandFixed16}}},
	{"LightKidoSet", []OperandSpec{{"index", OperandU8}, {"luminosity", OperandI16}}},
	{"RbjReset", nil},
	{"SceScrMove", []OperandSpec{{"align", OperandU8}, {"scrlY", OperandI16}}},
	{"PartsSet", []OperandSpec{{"align", OperandU8}, {"id", OperandI8}, {"type", OperandI8}, {"value", OperandI16}}},
	{"MovieOn", []OperandSpec{{"value", OperandU8}}},
	{"SplcRet", nil},
	{"SplcSce", nil},
	{"SuperOn", []OperandSpec{{"align", OperandU8}, {"data0", OperandU8}, {"data1", OperandU8}, {"data2", OperandI16}, {"data3", OperandI16}, {"data4", OperandI16}, {"data5", OperandI16}, {"data6", OperandI16}, {"data7", OperandI16}}},
	{"MirrorSet", []OperandSpec{{"flag", OperandU8}, {"position", OperandU16}, {"min", OperandU16}, {"max", OperandU16}}},
	{"SceFadeAdjust", []OperandSpec{{"data0", OperandU8}, {"data1", OperandI16}}},
	{"SceEspr3dOn2", []OperandSpec{{"dirYId2", OperandU8}, {"bit", OperandU16}, {"data4", OperandU16}, {"data6", OperandU16}, {"data8", OperandU16}, {"dataA", OperandU16}, {"dataC", OperandU16}, {"dataE", OperandU16}, {"data10", OperandU16}, {"data12", OperandU16}, {"data14", OperandU16}}},
	{"SceItemGet", []OperandSpec{{"id", OperandU8}, {"num", OperandU8}}},
	{"SceLineStart", []OperandSpec{{"id", OperandU8}, {"value", OperandU16}}},
	{"SceLineMain", []OperandSpec{{"id", OperandU8}, {"data0", OperandI16}, {"data1", OperandI16}}},
	{"SceLineEnd", nil},
	{"ScePartsBomb", []OperandSpec{{"align", OperandU8}, {"data2", OperandU8}, {"data3", OperandU8}, {"data4", OperandU8}, {"data5", OperandU8}, {"data6", OperandI16}, {"data8", OperandI16}, {"dataA", OperandI16}, {"dataC", OperandI16}, {"dataE", OperandI16}}},
	{"ScePartsDown", []OperandSpec{{"id", OperandU8}, {"x", OperandFixed16}, {"y", OperandFixed16}, {"z", OperandFixed16}, {"cDirZ", OperandFixed16}, {"dirX", OperandFixed16}, {"dirY", OperandFixed16}, {"dirZ", OperandFixed16}}},
	{"LightColorSet", []OperandSpec{{"index", OperandU8}, {"r", OperandU8}, {"g", OperandU8}, {"b", OperandU8}, {"align", OperandU8}}},
	{"LightPosSet2", []OperandSpec{{"nCut", OperandU8}, {"index", OperandU8}, {"xyz", OperandU8}, {"position", OperandI16}}},
	{"LightKidoSet2", []OperandSpec{{"align", OperandU8}, {"nCut", OperandU8}, {"index", OperandU8}, {"luminosity", OperandU16}}},
	{"LightColorSet2", []OperandSpec{{"nCut", OperandU8}, {"index", OperandU8}, {"r", OperandU8}, {"g", OperandU8}, {"b", OperandU8}}},
	{"SeVol", []OperandSpec{{"value", OperandU8}}},
	{"KeepItemCk2", []OperandSpec{{"itemId", OperandU8}, {"quantity", OperandU8}}},
	{"SceEsprTask", []OperandSpec{{"workKind", OperandI8}, {"workNo", OperandI8}}},
	{"PlcHeal", nil},
	{"StMapHint", []OperandSpec{{"value", OperandU8}}},
	{"SceEmPosCk", []OperandSpec{{"id", OperandU8}, {"data1", OperandU8}, {"att", OperandU8}, {"flg", OperandU16}}},
	{"PoisonCk", nil},
	{"PoisonClr", nil},
	{"SceItemLost2", []OperandSpec{{"itemId", OperandU8}, {"quantity", OperandU8}}},
	{"EvtNext2", nil},
	{"VibSet0", []OperandSpec{{"align", OperandU8}, {"data0", OperandU16}, {"data1", OperandU16}}},
	{"VibSet1", []OperandSpec{{"id", OperandU8}, {"value1", OperandU16}, {"value2", OperandU16}}},
	{"VibFadeSet", []OperandSpec{{"align", OperandU8}, {"data0", OperandU8}, {"data1", OperandU8}, {"data2", OperandU16}, {"data3", OperandU16}}},
	{"ItemAotSet2", []OperandSpec{{"aot", OperandU8}, {"sce", OperandU8}, {"sat", OperandU8}, {"nFloor", OperandU8}, {"super", OperandU8}, {"x", OperandFixed16}, {"z", OperandFixed16}, {"w", OperandUFixed16}, {"h", OperandUFixed16}, {"iItem", OperandU16}, {"nItem", OperandU16}, {"flag", OperandU16}, {"md1", OperandU8}, {"action", OperandU8}, {"data16", OperandU8}, {"data17", OperandU8}}},
	{"SceEmSet2", []OperandSpec{{"align", OperandU8}, {"aot", OperandU8}, {"emd", OperandU8}, {"type", OperandU16}, {"nFloor", OperandU8}, {"seType", OperandU8}, {"modelType", OperandU8}, {"emSetFlag", OperandU8}, {"x", OperandFixed16}, {"y", OperandFixed16}, {"z", OperandFixed16}, {"dirY", OperandFixed16}, {"timer0", OperandU16}, {"timer1", OperandU16}, {"data16", OperandU16}}},
}
