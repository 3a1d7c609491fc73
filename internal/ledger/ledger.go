package ledger

import (
	"bytes"
	"unsafe"

	"zet/pkg/contract"
)

// Ledger: 行到元数据的保序映射。哈希索引指向槽数组下标，槽数组的下标序
// 即权威输出序（首次插入序）。删除只标记死槽并摘除索引，从不压缩数组，
// 因此幸存条目的相对顺序始终与真实首现顺序一致，且逐条删除保持 O(1)。
//
// 键的所有权分两种：
//   - 来自首操作数的键借用其完整缓冲（buf 由 Ledger 持有、构造后不可变）；
//   - 后续操作数首次贡献的键拷贝为独立存储（其缓冲读完即可丢弃）。
//
// 两种键都以 string 形式参与哈希与比较，字节内容相等即相等，与来源无关。
type Ledger struct {
	index   map[string]int
	slots   []slot
	framing contract.Framing
	buf     []byte // 首操作数缓冲（去 BOM 后）；借用键的底座
}

type slot struct {
	key  string
	e    Entry
	dead bool
}

// Entry: 每个唯一行的计量元数据。
type Entry struct {
	// Total: 全部已处理操作数中匹配该行的行数（单调不减）。
	Total uint32
	// LastSeen: 最近出现该行的操作数序号。
	LastSeen contract.OperandID
	// Distinct: 出现过该行的不同操作数个数（每个操作数至多 +1）。
	Distinct uint32
}

const bom = "\xEF\xBB\xBF"

// NewFromBuffer 以首操作数的完整缓冲构建 Ledger：
//   - 记录输出框架（UTF-8 BOM 与首行终止符）；
//   - 去掉 BOM 后逐行切分（剥离 \n 与行尾 \r；末尾无终止符的行保留；
//     末尾空切片忽略），每行以借用键 Observe 为操作数 1。
//
// 约束：buf 在 Ledger 存续期内不得修改（借用键直接指向其中的字节）。
func NewFromBuffer(buf []byte) *Ledger {
	l := &Ledger{index: make(map[string]int)}
	if bytes.HasPrefix(buf, []byte(bom)) {
		l.framing.BOM = true
		buf = buf[len(bom):]
	}
	if n := bytes.IndexByte(buf, '\n'); n > 0 && buf[n-1] == '\r' {
		l.framing.CRLF = true
	}
	l.buf = buf

	const first = contract.OperandID(1)
	rest := buf
	for {
		n := bytes.IndexByte(rest, '\n')
		if n < 0 {
			break
		}
		line := rest[:n]
		rest = rest[n+1:]
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		l.observe(borrow(line), first)
	}
	if len(rest) > 0 {
		l.observe(borrow(rest), first)
	}
	return l
}

// borrow: 把首操作数缓冲内的子切片零拷贝转为 string 键。
// 安全前提：底层缓冲由 Ledger 持有且构造后不再写入。
func borrow(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Framing 返回取自首操作数的输出框架信息。
func (l *Ledger) Framing() contract.Framing { return l.framing }

// Observe: 插入或更新。新键拷贝为独立存储并以 Total=1、Distinct=1 插入；
// 已有键 Total+1，且仅当 LastSeen != op 时 Distinct+1（同一操作数内的
// 重复不会被重复计为第二个操作数）。
func (l *Ledger) Observe(line []byte, op contract.OperandID) {
	if i, ok := l.index[string(line)]; ok {
		l.slots[i].e.bump(op)
		return
	}
	l.observe(string(line), op) // 拷贝
}

func (l *Ledger) observe(key string, op contract.OperandID) {
	if i, ok := l.index[key]; ok {
		l.slots[i].e.bump(op)
		return
	}
	l.index[key] = len(l.slots)
	l.slots = append(l.slots, slot{key: key, e: Entry{Total: 1, LastSeen: op, Distinct: 1}})
}

// Touch: 仅更新已有条目（缺失时不插入），返回是否命中。
func (l *Ledger) Touch(line []byte, op contract.OperandID) bool {
	i, ok := l.index[string(line)]
	if !ok {
		return false
	}
	l.slots[i].e.bump(op)
	return true
}

func (e *Entry) bump(op contract.OperandID) {
	e.Total++
	if e.LastSeen != op {
		e.Distinct++
		e.LastSeen = op
	}
}

// Delete 摘除匹配条目（若存在）。槽位保留为死槽，幸存条目不重新编号。
func (l *Ledger) Delete(line []byte) {
	if i, ok := l.index[string(line)]; ok {
		l.slots[i].dead = true
		delete(l.index, l.slots[i].key)
	}
}

// Retain 对每个存活条目求值 keep，摘除不满足者。顺序保持。
func (l *Ledger) Retain(keep func(Entry) bool) {
	for i := range l.slots {
		s := &l.slots[i]
		if s.dead || keep(s.e) {
			continue
		}
		s.dead = true
		delete(l.index, s.key)
	}
}

// Len 返回存活条目数。
func (l *Ledger) Len() int { return len(l.index) }

// Range 按首次插入序遍历存活条目；fn 返回错误即中止并上抛。
func (l *Ledger) Range(fn func(line string, e Entry) error) error {
	for i := range l.slots {
		if l.slots[i].dead {
			continue
		}
		if err := fn(l.slots[i].key, l.slots[i].e); err != nil {
			return err
		}
	}
	return nil
}
