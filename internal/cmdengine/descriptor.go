// internal/cmdengine/descriptor.go
package cmdengine

import "github.com/asmbridge/cmdengine/internal/regfile"

// CombineLBA packs the low 6 bits of s (shifted into bits 2-7) into v,
// preserving v's bits 0-1. The target registers carry two flag bits next
// to a 6-bit LBA extension, so one byte holds both.
func CombineLBA(v, s byte) byte {
	return v | ((s << 2) & 0xFC)
}

// extractIssueBits moves bits 6-7 of a parameter byte into bits 0-1,
// the only meaningful bits of the issue register.
func extractIssueBits(param byte) byte {
	return (param >> 6) & 0x03
}

// writeDescriptor stages a read/write command in the register block and
// writes the trigger. The LBA register layout is historical and must be
// reproduced exactly:
//
//	RegLBA0 <- LBA byte 1
//	RegLBA1 <- LBA byte 0 | packed LBA byte 3
//	RegLBA2 <-          0 | packed LBA byte 2
func writeDescriptor(rf regfile.RegisterFile, req Request) {
	rf.Write8(RegOpcode, OpcodeReadWrite)
	rf.Write8(RegCmdStatus, StatusReadWrite)
	rf.Write8(RegIssue, IssueReadWrite)

	// Stage the tag, then flag it valid with a read-modify-write.
	rf.Write8(RegTag, TagReadWrite)
	tag := rf.Read8(RegTag)
	rf.Write8(RegTag, tag|TagValid)

	rf.Write8(RegLBA0, req.lbaByte(1))
	rf.Write8(RegLBA1, CombineLBA(req.lbaByte(0), req.lbaByte(3)))
	rf.Write8(RegLBA2, CombineLBA(0, req.lbaByte(2)))

	rf.Write8(RegTrigger, req.trigger())
}
