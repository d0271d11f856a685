// Package metadata reads the XML metadata document embedded in an E57 file.
//
// The document is an element tree in the namespace
// http://www.astm.org/COMMIT/E57/2010-e57-v1.0 rooted at <e57Root>. Every
// element carries a "type" attribute naming its E57 element type. Point
// clouds live under /data3D as CompressedVector elements:
//
//	<data3D type="Vector">
//	  <vectorChild type="Structure">
//	    <guid type="String">...</guid>
//	    <name type="String">...</name>
//	    <points type="CompressedVector" fileOffset="1024" recordCount="1000">
//	      <prototype type="Structure">
//	        <cartesianX type="ScaledInteger" minimum="-100000" maximum="100000" scale="0.001"/>
//	        <intensity type="Integer" minimum="0" maximum="2047"/>
//	      </prototype>
//	    </points>
//	  </vectorChild>
//	</data3D>
//
// Parse builds a Document, and Document.PointStreams turns each
// CompressedVector into a PointStream descriptor holding the physical offset
// of its binary section, its record count and its field layout. Queries are
// namespace-qualified: elements outside the E57 namespace are ignored.
package metadata
